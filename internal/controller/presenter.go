package controller

import (
	"time"

	"github.com/satyabrata0000006/social-downloader/internal/model"
)

// Hint texts keyed off the task status
const (
	HintMerging = "Merging/encoding on the server can be slow for large files."
	HintQueued  = "Queued; the download will start shortly."
)

// Log line timestamp layout
const TimestampLayout = "15:04:05"

// LogLines renders the full ordered message history of the task. The backend
// returns the complete history on every poll, so the whole view is rebuilt
// each tick instead of appending incrementally.
func LogLines(task *model.Task) []string {
	if task == nil || len(task.Messages) == 0 {
		return nil
	}
	lines := make([]string, 0, len(task.Messages))
	for _, m := range task.Messages {
		ts := time.Unix(int64(m.TS), 0).Format(TimestampLayout)
		lines = append(lines, ts+"  "+m.Text)
	}
	return lines
}

// Hint returns the contextual hint for a status and whether it should be
// shown. Visibility is a pure function of the latest status, recomputed on
// every change.
func Hint(status model.TaskStatus) (string, bool) {
	switch status {
	case model.TaskStatusRunning, model.TaskStatusProcessing:
		return HintMerging, true
	case model.TaskStatusQueued:
		return HintQueued, true
	}
	return "", false
}
