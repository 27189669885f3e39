package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Progress is the display form of task progress. The backend reports it
// either as a bare number (percent) or as a pre-formatted string such as
// "42%"; numbers are rounded to the nearest integer and suffixed with "%",
// strings are kept verbatim.
type Progress string

// UnmarshalJSON accepts both numeric and string progress values
func (p *Progress) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*p = Progress(text)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("progress is neither number nor string: %s", s)
	}
	*p = Progress(fmt.Sprintf("%d%%", int(math.Round(n))))
	return nil
}

// String returns the display text, empty when no progress was reported
func (p Progress) String() string {
	return string(p)
}

// Message is one backend log line attached to a task
type Message struct {
	TS   float64 `json:"ts"` // epoch seconds
	Text string  `json:"text"`
}

// Task mirrors one backend task snapshot. The client never mutates fields
// individually; each poll response replaces the whole value.
type Task struct {
	ID       string     `json:"-"`
	Status   TaskStatus `json:"status"`
	Progress Progress   `json:"progress,omitempty"`
	Messages []Message  `json:"messages,omitempty"`
	Filename string     `json:"filename,omitempty"`
	Err      string     `json:"error,omitempty"`
	Speed    float64    `json:"speed,omitempty"` // bytes per second, 0 if unknown
	URL      string     `json:"url,omitempty"`
	Created  float64    `json:"created,omitempty"` // epoch seconds
}

// Clone returns an independent copy of the task, including its messages
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Messages != nil {
		c.Messages = make([]Message, len(t.Messages))
		copy(c.Messages, t.Messages)
	}
	return &c
}
