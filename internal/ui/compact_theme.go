package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme color names used only by the log panel
const (
	ColorNameLogHighlight fyne.ThemeColorName = "logHighlight"
	ColorNameLogSystem    fyne.ThemeColorName = "logSystem"
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors. The status colors double as log line colors.
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		if variant == theme.VariantDark {
			return color.RGBA{R: 0, G: 230, B: 118, A: 255} // Bright green on dark
		}
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for saved tabs
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 82, B: 82, A: 255} // Soft red on dark
		}
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 215, B: 64, A: 255} // Amber for warnings
		}
		return color.RGBA{R: 191, G: 134, B: 0, A: 255} // darker amber, readable on light background
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 120, B: 215, A: 255} // Blue for the Start button
	case ColorNameLogHighlight:
		if variant == theme.VariantDark {
			return color.RGBA{R: 64, G: 196, B: 255, A: 255} // Light blue for highlighted lines
		}
		return color.RGBA{R: 2, G: 119, B: 189, A: 255} // Deep blue for highlighted lines
	case ColorNameLogSystem:
		return color.RGBA{R: 169, G: 169, B: 169, A: 255} // Gray for system lines
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 208, G: 208, B: 208, A: 255} // Off-white text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts. Monospace is used by the log panel.
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Half the default
	case theme.SizeNameInnerPadding:
		return 6 // Tighter entries and buttons
	case theme.SizeNameLineSpacing:
		return 2 // keeps long logs dense
	case theme.SizeNameScrollBar:
		return 12 // Narrow log scrollbar
	case theme.SizeNameText:
		return 13 // One point below default
	case theme.SizeNameHeadingText:
		return 16 // Dialog titles
	case theme.SizeNameSubHeadingText:
		return 13 // Same as body text
	case theme.SizeNameCaptionText:
		return 10 // Captions and hints
	case theme.SizeNameInputRadius:
		return 3 // Flatter inputs
	case theme.SizeNameSelectionRadius:
		return 2 // Flatter selection
	}

	// Default sizes for everything else
	return theme.DefaultTheme().Size(name)
}
