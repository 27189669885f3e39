package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/satyabrata0000006/social-downloader/internal/model"
)

// HTTP client constants
const (
	DefaultTimeout = 30 * time.Second

	// RequestsPerSecond and RequestBurst pace all backend calls so a fast
	// poll cadence cannot hammer the server
	RequestsPerSecond = 4
	RequestBurst      = 8
)

// Backend routes
const (
	InfoPath     = "/info"
	DownloadPath = "/download"
	TaskPath     = "/task/"
	FilePath     = "/download_file/"
)

// CookieOptions carries the optional cookie inputs attached to metadata and
// start requests
type CookieOptions struct {
	FileContents []byte // Netscape cookie file contents, empty for none
	TryBrowser   bool   // ask the backend to source cookies from a local browser
}

// InfoResponse is the metadata fetch result
type InfoResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	model.VideoInfo
}

// StartResponse is the task start result
type StartResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	TaskID string `json:"task_id,omitempty"`
}

// StatusResponse is one task status snapshot
type StatusResponse struct {
	OK    bool        `json:"ok"`
	Error string      `json:"error,omitempty"`
	Task  *model.Task `json:"task,omitempty"`
}

// Client talks to the media-fetch backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(RequestsPerSecond), RequestBurst),
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchInfo requests metadata and the raw format list for a normalized URL.
// A non-nil response with OK=false carries the backend's error text.
func (c *Client) FetchInfo(ctx context.Context, normalizedURL string, cookies CookieOptions) (*InfoResponse, error) {
	fields := map[string]string{
		"url":                 normalizedURL,
		"try_browser_cookies": boolField(cookies.TryBrowser),
	}
	resp := &InfoResponse{}
	if err := c.postForm(ctx, InfoPath, fields, cookies.FileContents, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// StartDownload asks the backend to start one download task. An empty
// formatID lets the backend choose; "audio:<codec>" requests audio extraction.
func (c *Client) StartDownload(ctx context.Context, normalizedURL, formatID string, cookies CookieOptions) (*StartResponse, error) {
	fields := map[string]string{
		"url":                 normalizedURL,
		"requested":           formatID,
		"try_browser_cookies": boolField(cookies.TryBrowser),
	}
	resp := &StartResponse{}
	if err := c.postForm(ctx, DownloadPath, fields, cookies.FileContents, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TaskStatus fetches the authoritative snapshot for one task id. The backend
// returns the complete message history on every call.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (*StatusResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+TaskPath+url.PathEscape(taskID), nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("task status request: %w", err)
	}
	defer httpResp.Body.Close()

	resp := &StatusResponse{}
	if err := decodeJSON(httpResp, resp); err != nil {
		return nil, err
	}
	if resp.Task != nil {
		resp.Task.ID = taskID
	}
	return resp, nil
}

// FileURL returns the retrieval URL for a produced file, filename escaped
func (c *Client) FileURL(filename string) string {
	return c.baseURL + FilePath + url.PathEscape(filename)
}

// postForm sends one multipart POST and decodes the JSON response into out
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, cookieFile []byte, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, contentType, err := encodeForm(fields, cookieFile)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	defer httpResp.Body.Close()

	return decodeJSON(httpResp, out)
}

// encodeForm builds the multipart body the backend expects, with the cookie
// file attached as the "cookies" part when present
func encodeForm(fields map[string]string, cookieFile []byte) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	if len(cookieFile) > 0 {
		part, err := w.CreateFormFile("cookies", "cookies.txt")
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(cookieFile); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// decodeJSON reads and decodes a backend response body. The backend sends a
// JSON envelope on error statuses too, so the body is decoded regardless of
// the status code; an undecodable body is reported with the status attached.
func decodeJSON(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
