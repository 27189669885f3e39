package model

import "testing"

func TestFormatCandidate_Streams(t *testing.T) {
	tests := []struct {
		vcodec   string
		acodec   string
		hasVideo bool
		hasAudio bool
	}{
		{"avc1.64001f", "mp4a.40.2", true, true},
		{"avc1.64001f", "none", true, false},
		{"none", "opus", false, true},
		{"", "", false, false},
		{"none", "none", false, false},
	}

	for _, test := range tests {
		f := &FormatCandidate{VCodec: test.vcodec, ACodec: test.acodec}
		if f.HasVideo() != test.hasVideo {
			t.Errorf("HasVideo() with vcodec=%q = %v, expected %v", test.vcodec, f.HasVideo(), test.hasVideo)
		}
		if f.HasAudio() != test.hasAudio {
			t.Errorf("HasAudio() with acodec=%q = %v, expected %v", test.acodec, f.HasAudio(), test.hasAudio)
		}
	}
}

func TestFormatCandidate_Size(t *testing.T) {
	tests := []struct {
		filesize int64
		approx   int64
		expected int64
	}{
		{1000, 2000, 1000},
		{0, 2000, 2000},
		{0, 0, 0},
	}

	for _, test := range tests {
		f := &FormatCandidate{Filesize: test.filesize, FilesizeApprox: test.approx}
		if f.Size() != test.expected {
			t.Errorf("Size() with filesize=%d approx=%d = %d, expected %d",
				test.filesize, test.approx, f.Size(), test.expected)
		}
	}
}
