package model

// CodecNone is the sentinel the backend uses for an absent codec
const CodecNone = "none"

// FormatCandidate is one selectable quality/encoding variant of the source
// media, as reported by the metadata fetch. Field names follow the backend
// wire format.
type FormatCandidate struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Height         int     `json:"height,omitempty"`
	ABR            float64 `json:"abr,omitempty"` // audio bitrate, kbps
	FPS            float64 `json:"fps,omitempty"`
	VCodec         string  `json:"vcodec,omitempty"`
	ACodec         string  `json:"acodec,omitempty"`
	Filesize       int64   `json:"filesize,omitempty"`
	FilesizeApprox int64   `json:"filesize_approx,omitempty"`
	FormatNote     string  `json:"format_note,omitempty"`
}

// HasVideo returns true if the candidate carries a video stream
func (f *FormatCandidate) HasVideo() bool {
	return f.VCodec != "" && f.VCodec != CodecNone
}

// HasAudio returns true if the candidate carries an audio stream
func (f *FormatCandidate) HasAudio() bool {
	return f.ACodec != "" && f.ACodec != CodecNone
}

// Size returns the exact filesize when known, the backend estimate otherwise,
// and 0 when neither is available
func (f *FormatCandidate) Size() int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	return f.FilesizeApprox
}

// VideoInfo is the metadata fetch result for one source URL
type VideoInfo struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Uploader   string            `json:"uploader,omitempty"`
	Duration   float64           `json:"duration,omitempty"` // seconds
	IsLive     bool              `json:"is_live,omitempty"`
	Thumbnail  string            `json:"thumbnail,omitempty"`
	WebpageURL string            `json:"webpage_url,omitempty"`
	Formats    []FormatCandidate `json:"formats,omitempty"`
}
