package model

// Package model defines domain data structures shared across the app: the
// mirrored backend task, its status enum, and the format candidates returned
// by the metadata fetch. Task values are owned by the controller and replaced
// whole on every poll; other packages only read them.
