package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sheets-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	autoOpenCheck  *widget.Check

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.languageCodes = make(map[string]string)
	var names []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.autoOpenCheck = widget.NewCheck(sd.localization.GetText(KeyAutoOpenFolder), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewSeparator(),
		sd.autoOpenCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
	sd.autoOpenCheck.SetChecked(sd.settings.GetAutoOpenFolder())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetAutoOpenFolder(sd.autoOpenCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
