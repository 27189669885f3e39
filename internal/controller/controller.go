package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satyabrata0000006/social-downloader/internal/api"
	"github.com/satyabrata0000006/social-downloader/internal/model"
)

// Poll cadence constants
const (
	// DefaultPollInterval is how often the task status is polled. The value
	// is a tunable, not a protocol requirement.
	DefaultPollInterval = 1500 * time.Millisecond
)

// Fallback error text when the backend reports failure without a message
const GenericFailureText = "download failed"

// Update is one immutable controller snapshot published to the rendering
// layer. Task is a copy; subscribers may keep it without locking.
type Update struct {
	State  State
	TaskID string
	Task   *model.Task // nil until the first applied poll response
	Err    string      // set for StateFailed

	// FilenameMissing marks the terminal condition where the backend
	// reported done but never produced a filename. Not treated as success.
	FilenameMissing bool
}

// Controller owns the lifecycle of one in-flight backend task: it issues the
// start request, polls for status on a fixed cadence, mirrors the backend
// snapshot, and stops on a terminal state. Starting a new task cancels the
// previous poll loop first; at most one loop runs per controller.
type Controller struct {
	backend  Backend
	interval time.Duration

	mu     sync.Mutex
	state  State
	taskID string
	task   *model.Task
	gen    string // generation token; stale loops and responses are discarded
	cancel context.CancelFunc

	onUpdate   func(Update)
	onRetrieve func(filename string)
}

// New creates an idle controller polling at the given interval;
// a non-positive interval selects DefaultPollInterval
func New(backend Backend, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Controller{
		backend:  backend,
		interval: interval,
		state:    StateIdle,
	}
}

// SetUpdateCallback sets the callback invoked on every observable change.
// Updates are published in order; the callback runs with the controller
// locked and must not call back into it.
func (c *Controller) SetUpdateCallback(callback func(Update)) {
	c.onUpdate = callback
}

// SetRetrieveCallback sets the callback invoked exactly once when a finished
// task produced a filename
func (c *Controller) SetRetrieveCallback(callback func(filename string)) {
	c.onRetrieve = callback
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TaskID returns the backend task id, empty before a successful start
func (c *Controller) TaskID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.taskID
}

// Task returns a copy of the mirrored task snapshot, nil when none applied
func (c *Controller) Task() *model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.task.Clone()
}

// Start issues one backend start request for the normalized URL and, on
// success, begins polling the returned task id. Any previous poll loop is
// stopped first, so a new download invalidates tracking of the prior task.
// An empty formatID lets the backend choose the format.
func (c *Controller) Start(normalizedURL, formatID string, cookies api.CookieOptions) error {
	c.mu.Lock()
	c.cancelLocked()
	gen := uuid.NewString()
	c.gen = gen
	c.state = StateStarting
	c.taskID = ""
	c.task = nil
	c.notifyLocked(Update{State: StateStarting})
	c.mu.Unlock()

	resp, err := c.backend.StartDownload(context.Background(), normalizedURL, formatID, cookies)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// a newer Start or Clear superseded this request; discard the result
		return nil
	}

	errText := ""
	switch {
	case err != nil:
		errText = err.Error()
	case resp == nil || !resp.OK:
		errText = GenericFailureText
		if resp != nil && resp.Error != "" {
			errText = resp.Error
		}
	case resp.TaskID == "":
		errText = "backend returned no task id"
	}

	if errText != "" {
		c.state = StateFailed
		c.notifyLocked(Update{State: StateFailed, Err: errText})
		return fmt.Errorf("start download: %s", errText)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.taskID = resp.TaskID
	c.state = StatePolling
	c.cancel = cancel
	c.notifyLocked(Update{State: StatePolling, TaskID: resp.TaskID})

	go c.pollLoop(ctx, gen, resp.TaskID)
	return nil
}

// Stop cancels any scheduled polling. An in-flight request is allowed to
// complete; its result is discarded by the generation check. Terminal states
// are left untouched.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	if c.state == StateStarting || c.state == StatePolling {
		c.state = StateIdle
		c.notifyLocked(c.snapshotLocked())
	}
}

// Clear stops any active poll loop and discards the mirrored task
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.state = StateIdle
	c.taskID = ""
	c.task = nil
	c.notifyLocked(Update{State: StateIdle})
}

// cancelLocked stops the current loop and invalidates the generation so any
// response already in flight is not applied. Caller holds c.mu.
func (c *Controller) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen = ""
}

// snapshotLocked builds an Update from current state. Caller holds c.mu.
func (c *Controller) snapshotLocked() Update {
	return Update{State: c.state, TaskID: c.taskID, Task: c.task.Clone()}
}

// notifyLocked publishes one update while holding c.mu, which keeps the
// published order consistent with state transitions
func (c *Controller) notifyLocked(u Update) {
	if c.onUpdate != nil {
		c.onUpdate(u)
	}
}

// pollLoop issues one status request per tick. The timer is reset only after
// the round trip completes, so ticks never overlap even when a request runs
// longer than the cadence.
func (c *Controller) pollLoop(ctx context.Context, gen, taskID string) {
	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		resp, err := c.backend.TaskStatus(ctx, taskID)
		if !c.applyTick(gen, taskID, resp, err) {
			return
		}
		timer.Reset(c.interval)
	}
}

// applyTick applies one poll response and reports whether polling continues
func (c *Controller) applyTick(gen, taskID string, resp *api.StatusResponse, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen || c.state != StatePolling {
		return false
	}

	// A single malformed or not-ok tick is not terminal: log and wait for
	// the next one.
	if err != nil {
		log.Printf("poll tick failed for task %s: %v", taskID, err)
		return true
	}
	if resp == nil || !resp.OK || resp.Task == nil {
		log.Printf("poll tick discarded for task %s: not-ok status response", taskID)
		return true
	}

	// The backend snapshot is authoritative: full replacement, never a merge.
	task := resp.Task.Clone()
	task.ID = taskID
	c.task = task

	switch {
	case task.Status == model.TaskStatusError || task.Err != "":
		c.state = StateFailed
		errText := task.Err
		if errText == "" {
			errText = GenericFailureText
		}
		u := c.snapshotLocked()
		u.Err = errText
		c.notifyLocked(u)
		return false

	case task.Status == model.TaskStatusDone || task.Filename != "":
		c.state = StateDone
		filename := task.Filename
		u := c.snapshotLocked()
		u.FilenameMissing = filename == ""
		c.notifyLocked(u)
		if filename != "" && c.onRetrieve != nil {
			c.onRetrieve(filename)
		}
		return false

	default:
		c.notifyLocked(c.snapshotLocked())
		return true
	}
}
