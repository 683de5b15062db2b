package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/download"
	"github.com/ytget/sheets-downloader/internal/model"
	"github.com/ytget/sheets-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	runner       download.Runner
	store        *config.Store
	settings     *config.Settings
	localization *Localization
	palette      LogPalette
	openFolder   func(dir string) error

	folderLabel   *widget.Label
	folderEntry   *widget.Entry
	savePathLabel *widget.Label
	savePathEntry *widget.Entry
	browseBtn     *widget.Button
	startBtn      *widget.Button
	logLabel      *widget.Label
	logText       *widget.RichText
	logScroll     *container.Scroll

	// touched only on the UI goroutine
	running bool
}

// NewRootUI creates and initializes the main UI. Persisted folder and save
// path values are loaded from store; palette colors the log lines.
func NewRootUI(window fyne.Window, app fyne.App, runner download.Runner, store *config.Store, palette LogPalette) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if palette == nil {
		palette = DefaultLogPalette()
	}

	ui := &RootUI{
		window:       window,
		runner:       runner,
		store:        store,
		settings:     settings,
		localization: localization,
		palette:      palette,
		openFolder:   platform.OpenFolder,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.loadPersisted()

	window.SetCloseIntercept(ui.onClose)
	return ui
}

// onClose stores the current inputs before the window goes away
func (ui *RootUI) onClose() {
	ui.saveSettings()
	ui.window.Close()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.folderLabel = widget.NewLabel(ui.localization.GetText(KeyFolderID))
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetPlaceHolder(ui.localization.GetText(KeyFolderIDHint))
	ui.folderEntry.Validator = ui.validateFolder
	ui.folderEntry.OnSubmitted = func(string) {
		ui.onStartClick()
	}

	ui.savePathLabel = widget.NewLabel(ui.localization.GetText(KeySavePath))
	ui.savePathEntry = widget.NewEntry()
	ui.savePathEntry.SetPlaceHolder(ui.localization.GetText(KeySavePathHint))
	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowseClick)

	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStart), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.logLabel = widget.NewLabel(ui.localization.GetText(KeyProgressLog))
	ui.logText = widget.NewRichText()
	ui.logText.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logText)
	ui.logScroll.SetMinSize(fyne.NewSize(LogPanelMinWidth, LogPanelMinH))

	form := container.New(layout.NewFormLayout(),
		ui.folderLabel, ui.folderEntry,
		ui.savePathLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.savePathEntry),
	)

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, form),
		ui.startBtn,
		ui.logLabel,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logScroll))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.folderLabel.SetText(ui.localization.GetText(KeyFolderID))
	ui.folderEntry.SetPlaceHolder(ui.localization.GetText(KeyFolderIDHint))
	ui.savePathLabel.SetText(ui.localization.GetText(KeySavePath))
	ui.savePathEntry.SetPlaceHolder(ui.localization.GetText(KeySavePathHint))
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.logLabel.SetText(ui.localization.GetText(KeyProgressLog))
	ui.setRunning(ui.running)
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// validateFolder accepts an empty value so the field is not flagged before
// the user types
func (ui *RootUI) validateFolder(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := platform.ExtractFolderID(input)
	return err
}

// loadPersisted fills the inputs from the settings file
func (ui *RootUI) loadPersisted() {
	p, err := ui.store.Load()
	if err != nil {
		log.Printf("Failed to load settings from %s: %v", ui.store.Path(), err)
	}

	savePath := p.SavePath
	if savePath == "" {
		savePath = ui.settings.GetLastSaveDir()
	}
	if savePath == "" {
		savePath = platform.DefaultSaveDir()
	}

	ui.folderEntry.SetText(p.FolderID)
	ui.savePathEntry.SetText(savePath)
}

// saveSettings writes the current inputs to the settings file
func (ui *RootUI) saveSettings() {
	p := config.Persisted{
		FolderID: strings.TrimSpace(ui.folderEntry.Text),
		SavePath: strings.TrimSpace(ui.savePathEntry.Text),
	}
	if err := ui.store.Save(p); err != nil {
		log.Printf("Failed to save settings to %s: %v", ui.store.Path(), err)
	}
	if p.SavePath != "" {
		ui.settings.SetLastSaveDir(p.SavePath)
	}
}

func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.savePathEntry.SetText(uri.Path())
		ui.settings.SetLastSaveDir(uri.Path())
	}, ui.window)
}

func (ui *RootUI) showInputError(key string) {
	dialog.ShowInformation(ui.localization.GetText(KeyInputError), ui.localization.GetText(key), ui.window)
}

// onStartClick validates the inputs and starts a run
func (ui *RootUI) onStartClick() {
	if ui.running {
		return
	}

	rawFolder := strings.TrimSpace(ui.folderEntry.Text)
	savePath := strings.TrimSpace(ui.savePathEntry.Text)

	if rawFolder == "" {
		ui.showInputError(KeyPleaseEnterFolder)
		return
	}
	if savePath == "" {
		ui.showInputError(KeyPleaseChoosePath)
		return
	}

	folderID, err := platform.ExtractFolderID(rawFolder)
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyInvalidFolder), err), ui.window)
		return
	}

	ui.clearLog()
	ui.setRunning(true)
	ui.saveSettings()

	events, err := ui.runner.Start(download.Request{FolderID: folderID, SaveDir: savePath})
	if err != nil {
		ui.setRunning(false)
		if errors.Is(err, download.ErrRunInProgress) {
			err = errors.New(ui.localization.GetText(KeyAlreadyRunning))
		}
		dialog.ShowError(err, ui.window)
		return
	}

	go ui.consume(events)
}

// consume forwards run events to the UI goroutine until the run ends
func (ui *RootUI) consume(events <-chan model.Event) {
	for ev := range events {
		fyne.Do(func() {
			ui.handleEvent(ev)
		})
	}
}

func (ui *RootUI) handleEvent(ev model.Event) {
	switch {
	case ev.Log != nil:
		ui.appendLog(*ev.Log)
	case ev.Done != nil:
		ui.onFinished(*ev.Done)
	}
}

// appendLog adds one colored line to the log panel and scrolls to it
func (ui *RootUI) appendLog(ev model.LogEvent) {
	if ev.Severity == model.SeverityHighlight && len(ui.logText.Segments) > 0 {
		ui.logText.Segments = append(ui.logText.Segments, &widget.TextSegment{Style: widget.RichTextStyleParagraph})
	}

	ui.logText.Segments = append(ui.logText.Segments, &widget.TextSegment{
		Text: ev.Message,
		Style: widget.RichTextStyle{
			ColorName: ui.palette.ColorFor(ev.Severity),
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	})
	ui.logText.Refresh()
	ui.logScroll.ScrollToBottom()
}

func (ui *RootUI) clearLog() {
	ui.logText.Segments = nil
	ui.logText.Refresh()
}

// onFinished shows the terminal message and re-enables input
func (ui *RootUI) onFinished(summary model.RunSummary) {
	severity := model.SeveritySuccess
	if summary.Status.IsFailure() {
		severity = model.SeverityError
	}
	ui.appendLog(model.LogEvent{Message: summary.Message, Severity: severity, Time: summary.Finished})
	log.Printf("Run %s finished: status=%s exported=%d duration=%s",
		summary.RunID, summary.Status, summary.Exported, summary.Duration())

	ui.setRunning(false)
	dialog.ShowInformation(ui.localization.GetText(KeyRunFinished), summary.Message, ui.window)

	if summary.Status == model.RunStatusCompleted && ui.settings.GetAutoOpenFolder() {
		if err := ui.openFolder(summary.SaveDir); err != nil {
			log.Printf("Failed to open %s: %v", summary.SaveDir, err)
			ui.appendLog(model.NewLogEvent(model.SeverityWarn, "%s: %v", ui.localization.GetText(KeyErrorOpenFolder), err))
		}
	}
}

// setRunning toggles the inputs between idle and running state
func (ui *RootUI) setRunning(running bool) {
	ui.running = running
	if running {
		ui.startBtn.SetText(ui.localization.GetText(KeyDownloading))
		ui.startBtn.Disable()
		ui.browseBtn.Disable()
		return
	}
	ui.startBtn.SetText(ui.localization.GetText(KeyStart))
	ui.startBtn.Enable()
	ui.browseBtn.Enable()
}
