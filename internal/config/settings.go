package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyAutoOpenFolder = "auto_open_folder_on_complete"
	KeyLastSaveDir    = "last_save_directory"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultAutoOpenFolder = true
)

// Settings manages UI preferences that are not part of the exported
// settings file: language, auto-open behaviour and the last browsed folder.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoOpenFolder returns whether to open the save folder after a run
func (s *Settings) GetAutoOpenFolder() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenFolder, DefaultAutoOpenFolder)
}

// SetAutoOpenFolder sets whether to open the save folder after a run
func (s *Settings) SetAutoOpenFolder(open bool) {
	s.app.Preferences().SetBool(KeyAutoOpenFolder, open)
}

// GetLastSaveDir returns the folder last picked in the browse dialog
func (s *Settings) GetLastSaveDir() string {
	return s.app.Preferences().String(KeyLastSaveDir)
}

// SetLastSaveDir remembers the folder picked in the browse dialog
func (s *Settings) SetLastSaveDir(dir string) {
	s.app.Preferences().SetString(KeyLastSaveDir, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
		"ru":     "Русский",
	}
}
