package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/sheets-downloader/internal/model"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
const (
	WindowWidth  float32 = 700
	WindowHeight float32 = 500

	LogPanelMinWidth float32 = 400
	LogPanelMinH     float32 = 280

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 220
)

// LogPalette maps a log severity to the theme color of its line
type LogPalette map[model.Severity]fyne.ThemeColorName

// DefaultLogPalette returns the colors used by the desktop app
func DefaultLogPalette() LogPalette {
	return LogPalette{
		model.SeverityInfo:      theme.ColorNameForeground,
		model.SeveritySuccess:   theme.ColorNameSuccess,
		model.SeverityError:     theme.ColorNameError,
		model.SeverityWarn:      theme.ColorNameWarning,
		model.SeverityHighlight: ColorNameLogHighlight,
		model.SeveritySystem:    ColorNameLogSystem,
	}
}

// ColorFor returns the line color for s, falling back to the foreground
func (p LogPalette) ColorFor(s model.Severity) fyne.ThemeColorName {
	if c, ok := p[s]; ok {
		return c
	}
	return theme.ColorNameForeground
}
