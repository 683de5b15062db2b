package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "sheets-downloader.png"
)

// LoadLogoResource loads the window icon from the working directory.
// The desktop app runs without an icon when the file is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
