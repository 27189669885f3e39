package controller

// Package controller implements the task lifecycle state machine: it starts
// one backend task, polls its status on a fixed cadence with a single
// in-flight request, mirrors the authoritative backend snapshot, and
// publishes immutable updates to the rendering layer. The presenter half
// derives log lines and contextual hints from the mirrored task.
