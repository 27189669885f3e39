package platform

// Package platform contains pure string helpers tied to the video platform:
// watch URL canonicalization and duration formatting. No network access.
