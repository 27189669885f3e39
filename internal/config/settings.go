package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL        = "backend_base_url"
	KeyPollIntervalMS    = "poll_interval_ms"
	KeyTryBrowserCookies = "try_browser_cookies"
	KeyCookieFilePath    = "cookie_file_path"
)

// Default values
const (
	DefaultBackendURL     = "http://127.0.0.1:5000"
	DefaultPollIntervalMS = 1500
	MinPollIntervalMS     = 250
	MaxPollIntervalMS     = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the configured backend base URL
func (s *Settings) GetBackendURL() string {
	u := s.app.Preferences().String(KeyBackendURL)
	if u == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return u
}

// SetBackendURL sets the backend base URL
func (s *Settings) SetBackendURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, u)
}

// GetPollInterval returns the task poll cadence
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyPollIntervalMS)
	if ms <= 0 {
		s.SetPollIntervalMS(DefaultPollIntervalMS)
		return DefaultPollIntervalMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetPollIntervalMS sets the poll cadence in milliseconds, clamped to a sane
// range
func (s *Settings) SetPollIntervalMS(ms int) {
	if ms < MinPollIntervalMS {
		ms = MinPollIntervalMS
	}
	if ms > MaxPollIntervalMS {
		ms = MaxPollIntervalMS
	}
	s.app.Preferences().SetInt(KeyPollIntervalMS, ms)
}

// GetTryBrowserCookies returns whether the backend should attempt
// browser-sourced cookies
func (s *Settings) GetTryBrowserCookies() bool {
	return s.app.Preferences().BoolWithFallback(KeyTryBrowserCookies, false)
}

// SetTryBrowserCookies sets the browser-sourced cookies flag
func (s *Settings) SetTryBrowserCookies(v bool) {
	s.app.Preferences().SetBool(KeyTryBrowserCookies, v)
}

// GetCookieFilePath returns the path of the cookie file to upload, empty for
// none
func (s *Settings) GetCookieFilePath() string {
	return s.app.Preferences().String(KeyCookieFilePath)
}

// SetCookieFilePath sets the cookie file path
func (s *Settings) SetCookieFilePath(path string) {
	s.app.Preferences().SetString(KeyCookieFilePath, strings.TrimSpace(path))
}
