package formats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/satyabrata0000006/social-downloader/internal/model"
)

// Synthetic entries prepended to every catalog
const (
	AutoLabel        = "best available (auto)"
	AudioPrefix      = "audio:"
	AudioExtractText = "extract audio (%s)"
)

// Media kind tags shown in labels
const (
	KindMuxed     = "muxed"
	KindVideoOnly = "video-only"
	KindAudioOnly = "audio-only"
)

// File size formatting constants
const (
	FileSizeUnit = 1024
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// audioCodecs are the audio-conversion targets the backend accepts as
// "audio:<codec>" selections
var audioCodecs = []string{"mp3", "m4a"}

// Option is one user-presentable catalog entry. An empty FormatID selects
// the backend default; "audio:<codec>" requests audio extraction. Candidate
// is nil for synthetic entries.
type Option struct {
	FormatID  string
	Label     string
	Candidate *model.FormatCandidate
}

// Build produces the deduplicated, ranked catalog from the raw format list:
// candidates without an extension are dropped, the rest are sorted descending
// by (height, abr), duplicates by (ext, height, abr, fps) are collapsed to
// the first occurrence, and the synthetic auto and audio-extraction entries
// are prepended.
func Build(raw []model.FormatCandidate) []Option {
	usable := make([]model.FormatCandidate, 0, len(raw))
	for _, f := range raw {
		if f.Ext == "" {
			continue
		}
		usable = append(usable, f)
	}

	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].Height != usable[j].Height {
			return usable[i].Height > usable[j].Height
		}
		return usable[i].ABR > usable[j].ABR
	})

	type dedupeKey struct {
		ext    string
		height int
		abr    float64
		fps    float64
	}

	options := make([]Option, 0, len(usable)+1+len(audioCodecs))
	options = append(options, Option{FormatID: "", Label: AutoLabel})
	for _, codec := range audioCodecs {
		options = append(options, Option{
			FormatID: AudioPrefix + codec,
			Label:    fmt.Sprintf(AudioExtractText, codec),
		})
	}

	seen := make(map[dedupeKey]bool, len(usable))
	for i := range usable {
		f := usable[i]
		key := dedupeKey{ext: f.Ext, height: f.Height, abr: f.ABR, fps: f.FPS}
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, Option{
			FormatID:  f.FormatID,
			Label:     Label(&f),
			Candidate: &f,
		})
	}

	return options
}

// Label derives the display text for one candidate: resolution or bitrate or
// format note, extension, media kind, and size when known.
func Label(f *model.FormatCandidate) string {
	parts := make([]string, 0, 4)

	switch {
	case f.Height > 0:
		parts = append(parts, fmt.Sprintf("%dp", f.Height))
	case f.ABR > 0:
		parts = append(parts, strconv.FormatFloat(f.ABR, 'f', -1, 64)+"kbps")
	case f.FormatNote != "":
		parts = append(parts, f.FormatNote)
	}

	parts = append(parts, f.Ext)

	if kind := mediaKind(f); kind != "" {
		parts = append(parts, kind)
	}

	if size := f.Size(); size > 0 {
		parts = append(parts, FormatSize(size))
	}

	return strings.Join(parts, " ")
}

// mediaKind tags the candidate by which streams it carries
func mediaKind(f *model.FormatCandidate) string {
	switch {
	case f.HasVideo() && f.HasAudio():
		return KindMuxed
	case f.HasVideo():
		return KindVideoOnly
	case f.HasAudio():
		return KindAudioOnly
	}
	return ""
}

// FormatSize formats a byte count for display: plain bytes under 1024,
// otherwise divided through KB/MB/GB/TB with one decimal place.
func FormatSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	unit := sizeUnits[0]
	for _, u := range sizeUnits {
		value /= FileSizeUnit
		unit = u
		if value < FileSizeUnit {
			break
		}
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}
