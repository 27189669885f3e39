package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the backend client and the task controller, and renders
// controller updates: metadata, format catalog, progress, hints, and the
// task log.
