package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/satyabrata0000006/social-downloader/internal/api"
	"github.com/satyabrata0000006/social-downloader/internal/config"
	"github.com/satyabrata0000006/social-downloader/internal/controller"
	"github.com/satyabrata0000006/social-downloader/internal/formats"
	"github.com/satyabrata0000006/social-downloader/internal/platform"
)

// UI text constants
const (
	PlaceholderURL = "Paste a video URL"
	FetchLabel     = "Fetch info"
	DownloadLabel  = "Download"
	ClearLabel     = "Clear"
	SettingsLabel  = "Settings"
	IdleStatusText = "Paste a URL and fetch the available formats."
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings

	client *api.Client
	ctrl   *controller.Controller

	// UI components
	urlEntry     *widget.Entry
	fetchBtn     *widget.Button
	downloadBtn  *widget.Button
	clearBtn     *widget.Button
	infoLabel    *widget.Label
	formatSelect *widget.Select
	statusLabel  *widget.Label
	progressBar  *widget.ProgressBar
	hintLabel    *widget.Label
	logLabel     *widget.Label

	// Catalog backing the format select, index-aligned with its options
	options []formats.Option
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: config.NewSettings(app),
	}

	ui.initServices()
	ui.setupUI()

	log.Printf("RootUI initialized, backend %s", ui.client.BaseURL())
	return ui
}

// initServices (re)builds the backend client and the task controller from
// current settings. Any running poll loop is stopped first.
func (ui *RootUI) initServices() {
	if ui.ctrl != nil {
		ui.ctrl.Stop()
	}

	ui.client = api.NewClient(ui.settings.GetBackendURL())
	ui.ctrl = controller.New(ui.client, ui.settings.GetPollInterval())
	ui.ctrl.SetUpdateCallback(ui.onControllerUpdate)
	ui.ctrl.SetRetrieveCallback(ui.onRetrieveFile)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(PlaceholderURL)
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(FetchLabel, ui.onFetchClick)

	settingsBtn := widget.NewButton(SettingsLabel, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.fetchBtn, ui.urlEntry)

	ui.infoLabel = widget.NewLabel("")
	ui.infoLabel.Wrapping = fyne.TextWrapWord

	ui.formatSelect = widget.NewSelect(nil, nil)
	ui.formatSelect.PlaceHolder = "Fetch info to list formats"

	ui.downloadBtn = widget.NewButton(DownloadLabel, ui.onDownloadClick)
	ui.downloadBtn.Disable()

	ui.clearBtn = widget.NewButton(ClearLabel, ui.onClearClick)

	formatRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.downloadBtn, ui.clearBtn), ui.formatSelect)

	ui.statusLabel = widget.NewLabel(IdleStatusText)
	ui.progressBar = widget.NewProgressBar()

	ui.hintLabel = widget.NewLabel("")
	ui.hintLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.hintLabel.Hide()

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	logScroll := container.NewVScroll(ui.logLabel)

	header := container.NewVBox(
		topPanel,
		ui.infoLabel,
		formatRow,
		ui.progressBar,
		ui.statusLabel,
		ui.hintLabel,
		widget.NewSeparator(),
	)

	content := container.NewBorder(header, nil, nil, nil, logScroll)
	ui.window.SetContent(content)
}

// cookieOptions assembles the cookie inputs from settings; an unreadable
// cookie file is logged and skipped rather than blocking the request
func (ui *RootUI) cookieOptions() api.CookieOptions {
	opts := api.CookieOptions{TryBrowser: ui.settings.GetTryBrowserCookies()}
	if path := ui.settings.GetCookieFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("cookie file %s not readable: %v", path, err)
		} else {
			opts.FileContents = data
		}
	}
	return opts
}

// onFetchClick requests metadata for the entered URL
func (ui *RootUI) onFetchClick() {
	raw := strings.TrimSpace(ui.urlEntry.Text)
	if raw == "" {
		dialog.ShowError(errors.New("enter a video URL first"), ui.window)
		return
	}

	normalized := platform.NormalizeWatchURL(raw)
	log.Printf("fetching metadata for %s", normalized)

	ui.fetchBtn.Disable()
	ui.statusLabel.SetText("Fetching metadata...")

	go func() {
		resp, err := ui.client.FetchInfo(context.Background(), normalized, ui.cookieOptions())
		fyne.Do(func() {
			ui.fetchBtn.Enable()
			if err != nil {
				ui.statusLabel.SetText(IdleStatusText)
				dialog.ShowError(fmt.Errorf("metadata fetch failed: %w", err), ui.window)
				return
			}
			if !resp.OK {
				ui.statusLabel.SetText(IdleStatusText)
				errText := resp.Error
				if errText == "" {
					errText = "backend rejected the request"
				}
				dialog.ShowError(errors.New(errText), ui.window)
				return
			}
			ui.applyInfo(resp)
		})
	}()
}

// applyInfo renders the metadata panel and populates the format catalog
func (ui *RootUI) applyInfo(resp *api.InfoResponse) {
	info := resp.Title
	if resp.Uploader != "" {
		info += " — " + resp.Uploader
	}
	if resp.Duration > 0 {
		info += " — " + platform.FormatDuration(int(resp.Duration))
	}
	if resp.IsLive {
		info += " — LIVE"
	}
	ui.infoLabel.SetText(info)

	ui.options = formats.Build(resp.Formats)
	labels := make([]string, len(ui.options))
	for i, opt := range ui.options {
		labels[i] = opt.Label
	}
	ui.formatSelect.Options = labels
	ui.formatSelect.SetSelectedIndex(0)

	ui.statusLabel.SetText(fmt.Sprintf("%d formats available; pick one and download.", len(ui.options)))
	ui.downloadBtn.Enable()
}

// onDownloadClick starts a backend task for the selected format
func (ui *RootUI) onDownloadClick() {
	if len(ui.options) == 0 {
		dialog.ShowError(errors.New("fetch the video info first"), ui.window)
		return
	}

	formatID := ""
	if idx := ui.formatSelect.SelectedIndex(); idx >= 0 && idx < len(ui.options) {
		formatID = ui.options[idx].FormatID
	}

	normalized := platform.NormalizeWatchURL(strings.TrimSpace(ui.urlEntry.Text))
	cookies := ui.cookieOptions()

	// Re-enabled from controller updates once the task reaches a terminal
	// state or the session is cleared.
	ui.downloadBtn.Disable()
	ui.progressBar.SetValue(0)

	go func() {
		if err := ui.ctrl.Start(normalized, formatID, cookies); err != nil {
			log.Printf("start failed: %v", err)
		}
	}()
}

// onClearClick stops any active poll loop and resets the session
func (ui *RootUI) onClearClick() {
	ui.ctrl.Clear()
	ui.options = nil
	ui.formatSelect.Options = nil
	ui.formatSelect.ClearSelected()
	ui.infoLabel.SetText("")
	ui.logLabel.SetText("")
	ui.progressBar.SetValue(0)
	ui.downloadBtn.Disable()
}

// onControllerUpdate renders one controller snapshot. It runs with the
// controller locked, so all work is pushed onto the UI thread and no
// controller methods are called from here.
func (ui *RootUI) onControllerUpdate(u controller.Update) {
	fyne.Do(func() {
		status := "Status: " + u.State.String()
		if u.Task != nil && u.Task.Status != "" {
			status += " (" + u.Task.Status.String() + ")"
		}
		if u.Task != nil && u.Task.Progress != "" {
			status += " — " + u.Task.Progress.String()
			if f, ok := progressFraction(u.Task.Progress.String()); ok {
				ui.progressBar.SetValue(f)
			}
		}
		ui.statusLabel.SetText(status)

		hintText, visible := "", false
		if u.Task != nil {
			hintText, visible = controller.Hint(u.Task.Status)
		}
		if visible {
			ui.hintLabel.SetText(hintText)
			ui.hintLabel.Show()
		} else {
			ui.hintLabel.Hide()
		}

		// The backend returns the complete history each tick; rebuild the
		// whole view instead of appending.
		ui.logLabel.SetText(strings.Join(controller.LogLines(u.Task), "\n"))

		switch u.State {
		case controller.StateFailed:
			ui.downloadBtn.Enable()
			dialog.ShowError(errors.New(u.Err), ui.window)
		case controller.StateDone:
			ui.downloadBtn.Enable()
			ui.progressBar.SetValue(1)
			if u.FilenameMissing {
				dialog.ShowInformation("Finished",
					"The task finished but the backend reported no file.", ui.window)
			}
		case controller.StateIdle:
			ui.downloadBtn.Enable()
			ui.statusLabel.SetText(IdleStatusText)
		}
	})
}

// onRetrieveFile opens the produced file's download URL with the system
// handler; the controller guarantees this fires at most once per task
func (ui *RootUI) onRetrieveFile(filename string) {
	fileURL := ui.client.FileURL(filename)
	log.Printf("retrieving %s", fileURL)

	parsed, err := url.Parse(fileURL)
	if err != nil {
		log.Printf("file URL not parseable: %v", err)
		return
	}
	if err := ui.app.OpenURL(parsed); err != nil {
		log.Printf("open file URL: %v", err)
	}
}

// onShowSettings opens the settings dialog; saved settings rebuild the
// backend client and controller
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.initServices).Show()
}

// progressFraction parses display progress like "42%" into a 0..1 fraction
func progressFraction(text string) (float64, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return f / 100, true
}
