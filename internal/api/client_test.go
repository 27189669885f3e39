package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/satyabrata0000006/social-downloader/internal/model"
)

func TestClient_FetchInfo(t *testing.T) {
	var gotURL, gotTryBrowser, gotCookies string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/info" {
			t.Errorf("Expected path /info, got %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		gotURL = r.FormValue("url")
		gotTryBrowser = r.FormValue("try_browser_cookies")
		if file, _, err := r.FormFile("cookies"); err == nil {
			data, _ := io.ReadAll(file)
			gotCookies = string(data)
			file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "id": "abc", "title": "A Video", "duration": 91,
			"formats": [{"format_id": "22", "ext": "mp4", "height": 720}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchInfo(context.Background(), "https://www.youtube.com/watch?v=abc", CookieOptions{
		FileContents: []byte("# Netscape HTTP Cookie File"),
		TryBrowser:   true,
	})
	if err != nil {
		t.Fatalf("FetchInfo returned error: %v", err)
	}

	if gotURL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("Backend received url %q", gotURL)
	}
	if gotTryBrowser != "1" {
		t.Errorf("Expected try_browser_cookies=1, got %q", gotTryBrowser)
	}
	if gotCookies != "# Netscape HTTP Cookie File" {
		t.Errorf("Backend received cookies %q", gotCookies)
	}

	if !resp.OK {
		t.Error("Expected ok response")
	}
	if resp.Title != "A Video" {
		t.Errorf("Expected title 'A Video', got %q", resp.Title)
	}
	if len(resp.Formats) != 1 || resp.Formats[0].FormatID != "22" {
		t.Errorf("Unexpected formats: %+v", resp.Formats)
	}
}

func TestClient_FetchInfoBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"ok": false, "error": "Video unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchInfo(context.Background(), "https://www.youtube.com/watch?v=abc", CookieOptions{})
	if err != nil {
		t.Fatalf("Expected decoded error envelope, got transport error: %v", err)
	}
	if resp.OK {
		t.Error("Expected ok=false")
	}
	if resp.Error != "Video unavailable" {
		t.Errorf("Expected backend error text, got %q", resp.Error)
	}
}

func TestClient_StartDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download" {
			t.Errorf("Expected path /download, got %s", r.URL.Path)
		}
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("requested"); got != "137" {
			t.Errorf("Expected requested=137, got %q", got)
		}
		if got := r.FormValue("try_browser_cookies"); got != "0" {
			t.Errorf("Expected try_browser_cookies=0, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "task_id": "task-1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.StartDownload(context.Background(), "https://www.youtube.com/watch?v=abc", "137", CookieOptions{})
	if err != nil {
		t.Fatalf("StartDownload returned error: %v", err)
	}
	if !resp.OK || resp.TaskID != "task-1" {
		t.Errorf("Unexpected start response: %+v", resp)
	}
}

func TestClient_TaskStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/task/task-1" {
			t.Errorf("Expected path /task/task-1, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "task": {"status": "running", "progress": "42%",
			"messages": [{"ts": 1700000000, "text": "Downloading... 42%"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.TaskStatus(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("TaskStatus returned error: %v", err)
	}
	if resp.Task == nil {
		t.Fatal("Expected task snapshot")
	}
	if resp.Task.ID != "task-1" {
		t.Errorf("Expected task id to be filled in, got %q", resp.Task.ID)
	}
	if resp.Task.Status != model.TaskStatusRunning {
		t.Errorf("Expected status running, got %s", resp.Task.Status)
	}
	if resp.Task.Progress.String() != "42%" {
		t.Errorf("Expected progress '42%%', got %q", resp.Task.Progress.String())
	}
}

func TestClient_TaskStatusMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.TaskStatus(context.Background(), "task-1"); err == nil {
		t.Error("Expected error for undecodable body, got nil")
	}
}

func TestClient_FileURL(t *testing.T) {
	client := NewClient("http://127.0.0.1:5000/")

	tests := []struct {
		filename string
		expected string
	}{
		{"clip.mp4", "http://127.0.0.1:5000/download_file/clip.mp4"},
		{"My Video - abc123.mp4", "http://127.0.0.1:5000/download_file/My%20Video%20-%20abc123.mp4"},
		{"a/b.mp4", "http://127.0.0.1:5000/download_file/a%2Fb.mp4"},
	}

	for _, test := range tests {
		result := client.FileURL(test.filename)
		if result != test.expected {
			t.Errorf("FileURL(%q) = %q, expected %q", test.filename, result, test.expected)
		}
	}
}
