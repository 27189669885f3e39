package controller

import (
	"fmt"
	"testing"
	"time"

	"github.com/satyabrata0000006/social-downloader/internal/model"
)

func TestLogLines(t *testing.T) {
	task := &model.Task{
		Messages: []model.Message{
			{TS: 1700000000, Text: "Queued download task"},
			{TS: 1700000005, Text: "Task started"},
			{TS: 1700000020, Text: "Downloading... 42%"},
		},
	}

	lines := LogLines(task)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 log lines, got %d", len(lines))
	}

	// Expected timestamps are rendered through the same local-time clock the
	// presenter uses, so the test is timezone independent.
	for i, m := range task.Messages {
		expected := fmt.Sprintf("%s  %s", time.Unix(int64(m.TS), 0).Format(TimestampLayout), m.Text)
		if lines[i] != expected {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], expected)
		}
	}
}

func TestLogLines_Empty(t *testing.T) {
	if lines := LogLines(nil); lines != nil {
		t.Errorf("Expected nil for nil task, got %v", lines)
	}
	if lines := LogLines(&model.Task{}); lines != nil {
		t.Errorf("Expected nil for task without messages, got %v", lines)
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		status  model.TaskStatus
		text    string
		visible bool
	}{
		{model.TaskStatusQueued, HintQueued, true},
		{model.TaskStatusRunning, HintMerging, true},
		{model.TaskStatusProcessing, HintMerging, true},
		{model.TaskStatusDone, "", false},
		{model.TaskStatusError, "", false},
		{model.TaskStatus(""), "", false},
	}

	for _, test := range tests {
		text, visible := Hint(test.status)
		if text != test.text || visible != test.visible {
			t.Errorf("Hint(%q) = (%q, %v), expected (%q, %v)",
				test.status, text, visible, test.text, test.visible)
		}
	}
}
