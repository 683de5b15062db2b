package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ko")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ko" {
		t.Errorf("Expected language 'ko', got %s", retrievedLang)
	}
}

func TestAutoOpenFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoOpenFolder() != DefaultAutoOpenFolder {
		t.Errorf("Expected default auto-open %v", DefaultAutoOpenFolder)
	}

	settings.SetAutoOpenFolder(false)
	if settings.GetAutoOpenFolder() {
		t.Error("Expected auto-open to be disabled")
	}
}

func TestLastSaveDir(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastSaveDir() != "" {
		t.Error("Expected empty last save dir by default")
	}

	settings.SetLastSaveDir("/data/exports")
	if got := settings.GetLastSaveDir(); got != "/data/exports" {
		t.Errorf("Expected '/data/exports', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ko", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
