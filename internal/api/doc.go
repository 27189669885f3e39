package api

// Package api implements the HTTP client for the media-fetch backend:
// metadata fetch, task start, task status polling, and the file retrieval
// URL. All calls are paced through a shared rate limiter.
