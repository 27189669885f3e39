package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/satyabrata0000006/social-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	backendURLEntry   *widget.Entry
	pollIntervalEntry *widget.Entry
	cookieFileEntry   *widget.Entry
	tryBrowserCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after the
// settings were persisted
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder(config.DefaultBackendURL)

	sd.pollIntervalEntry = widget.NewEntry()
	sd.pollIntervalEntry.SetPlaceHolder("milliseconds, e.g. 1500")

	sd.cookieFileEntry = widget.NewEntry()
	sd.cookieFileEntry.SetPlaceHolder("Netscape cookies.txt path (optional)")

	browseCookieBtn := widget.NewButton("Browse", sd.onBrowseCookieFile)
	cookieFileRow := container.NewBorder(nil, nil, nil, browseCookieBtn, sd.cookieFileEntry)

	sd.tryBrowserCheck = widget.NewCheck("Let the backend try browser cookies", nil)

	form := container.NewVBox(
		widget.NewLabel("Backend"),
		widget.NewSeparator(),

		widget.NewLabel("Base URL:"),
		sd.backendURLEntry,

		widget.NewLabel("Poll interval:"),
		sd.pollIntervalEntry,

		widget.NewSeparator(),
		widget.NewLabel("Cookies"),
		widget.NewSeparator(),

		widget.NewLabel("Cookie file:"),
		cookieFileRow,

		sd.tryBrowserCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.pollIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetPollInterval().Milliseconds())))
	sd.cookieFileEntry.SetText(sd.settings.GetCookieFilePath())
	sd.tryBrowserCheck.SetChecked(sd.settings.GetTryBrowserCookies())
}

// onBrowseCookieFile handles cookie file selection
func (sd *SettingsDialog) onBrowseCookieFile() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.cookieFileEntry.SetText(uri.URI().Path())
		uri.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.backendURLEntry.Text != "" {
		sd.settings.SetBackendURL(sd.backendURLEntry.Text)
	}

	if ms, err := strconv.Atoi(sd.pollIntervalEntry.Text); err == nil {
		sd.settings.SetPollIntervalMS(ms)
	}

	sd.settings.SetCookieFilePath(sd.cookieFileEntry.Text)
	sd.settings.SetTryBrowserCookies(sd.tryBrowserCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
