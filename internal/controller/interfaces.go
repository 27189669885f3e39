package controller

import (
	"context"

	"github.com/satyabrata0000006/social-downloader/internal/api"
)

// Backend is the slice of the backend client the controller depends on.
// *api.Client satisfies it; tests substitute a scripted fake.
type Backend interface {
	StartDownload(ctx context.Context, normalizedURL, formatID string, cookies api.CookieOptions) (*api.StartResponse, error)
	TaskStatus(ctx context.Context, taskID string) (*api.StatusResponse, error)
}
