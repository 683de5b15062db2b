package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/download"
	"github.com/ytget/sheets-downloader/internal/logging"
	"github.com/ytget/sheets-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.sheets-downloader"
	AppName = "Sheets Downloader"

	// EnvConfigFile points at an alternative TOML config
	EnvConfigFile = "SHEETS_CONFIG"
)

func main() {
	cfg, err := config.LoadAppConfig(os.Getenv(EnvConfigFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	slog.Info("starting", "app", AppName, "version", version)

	exportSvc, err := download.FromConfig(cfg)
	if err != nil {
		slog.Error("failed to initialize export service", "error", err)
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	// auto_open = false in the config file wins over the stored preference
	if !cfg.AutoOpen {
		config.NewSettings(myApp).SetAutoOpenFolder(false)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, exportSvc, config.NewStore(cfg.SettingsFile), ui.DefaultLogPalette())

	myWindow.ShowAndRun()
}
