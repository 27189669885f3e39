package controller

// State is the lifecycle phase of the task controller
type State int

const (
	// StateIdle means no task is tracked
	StateIdle State = iota

	// StateStarting means the start request is in flight
	StateStarting

	// StatePolling means a task id is recorded and status polls are scheduled
	StatePolling

	// StateDone means the task finished; no further polls are scheduled
	StateDone

	// StateFailed means the start request or the task itself failed
	StateFailed
)

// String returns a human-friendly name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StatePolling:
		return "polling"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the controller stopped scheduling polls
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
