package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if u := settings.GetBackendURL(); u != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, u)
	}

	// Test setting custom value, trailing slash trimmed
	settings.SetBackendURL("http://192.168.1.10:5000/")
	if u := settings.GetBackendURL(); u != "http://192.168.1.10:5000" {
		t.Errorf("Expected trimmed URL, got %s", u)
	}

	// Empty value falls back to the default
	settings.SetBackendURL("   ")
	if u := settings.GetBackendURL(); u != DefaultBackendURL {
		t.Errorf("Expected default after empty set, got %s", u)
	}
}

func TestPollInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if d := settings.GetPollInterval(); d != DefaultPollIntervalMS*time.Millisecond {
		t.Errorf("Expected default poll interval, got %v", d)
	}

	// Test setting custom value
	settings.SetPollIntervalMS(2000)
	if d := settings.GetPollInterval(); d != 2*time.Second {
		t.Errorf("Expected 2s poll interval, got %v", d)
	}

	// Test boundary values
	settings.SetPollIntervalMS(1) // Should be clamped to the minimum
	if d := settings.GetPollInterval(); d != MinPollIntervalMS*time.Millisecond {
		t.Errorf("Expected clamped minimum, got %v", d)
	}

	settings.SetPollIntervalMS(600000) // Should be clamped to the maximum
	if d := settings.GetPollInterval(); d != MaxPollIntervalMS*time.Millisecond {
		t.Errorf("Expected clamped maximum, got %v", d)
	}
}

func TestTryBrowserCookies(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTryBrowserCookies() {
		t.Error("Expected browser cookies flag to default to false")
	}

	settings.SetTryBrowserCookies(true)
	if !settings.GetTryBrowserCookies() {
		t.Error("Expected browser cookies flag to be true after set")
	}
}

func TestCookieFilePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if p := settings.GetCookieFilePath(); p != "" {
		t.Errorf("Expected empty cookie file path by default, got %s", p)
	}

	settings.SetCookieFilePath("  /home/user/cookies.txt ")
	if p := settings.GetCookieFilePath(); p != "/home/user/cookies.txt" {
		t.Errorf("Expected trimmed path, got %s", p)
	}
}
