package model

// TaskStatus represents the backend-reported status of a download task
type TaskStatus string

const (
	// TaskStatusQueued means the backend accepted the task but has not started it
	TaskStatusQueued TaskStatus = "queued"

	// TaskStatusRunning means the download is in progress
	TaskStatusRunning TaskStatus = "running"

	// TaskStatusProcessing means the download finished and merging/encoding is in progress
	TaskStatusProcessing TaskStatus = "processing"

	// TaskStatusDone means the task finished and a file should be available
	TaskStatusDone TaskStatus = "done"

	// TaskStatusError means the task failed on the backend
	TaskStatusError TaskStatus = "error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is still being worked on by the backend
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusQueued || ts == TaskStatusRunning || ts == TaskStatusProcessing
}

// IsTerminal returns true if the task reached a final state
func (ts TaskStatus) IsTerminal() bool {
	return ts == TaskStatusDone || ts == TaskStatusError
}
