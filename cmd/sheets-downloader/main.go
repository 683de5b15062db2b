package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/download"
	"github.com/ytget/sheets-downloader/internal/logging"
	"github.com/ytget/sheets-downloader/internal/model"
	"github.com/ytget/sheets-downloader/internal/platform"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config named by --config and sets up logging
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:          "sheets-downloader",
	Short:        "Export the Table and Schema tabs of Google Sheets in a Drive folder as CSV",
	SilenceUsage: true,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every spreadsheet under a Drive folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		folder, _ := cmd.Flags().GetString("folder")
		out, _ := cmd.Flags().GetString("out")
		tabs, _ := cmd.Flags().GetStringSlice("tabs")

		// fall back to what the desktop app remembered
		persisted, err := config.NewStore(cfg.SettingsFile).Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if folder == "" {
			folder = persisted.FolderID
		}
		if out == "" {
			out = persisted.SavePath
		}
		if out == "" {
			out = platform.DefaultSaveDir()
		}
		if folder == "" {
			return errors.New("no folder given: use --folder")
		}

		folderID, err := platform.ExtractFolderID(folder)
		if err != nil {
			return err
		}

		svc, err := download.FromConfig(cfg)
		if err != nil {
			return err
		}

		events, err := svc.Start(download.Request{FolderID: folderID, SaveDir: out, TargetTabs: tabs})
		if err != nil {
			return err
		}

		summary := printEvents(events)
		if summary.Status.IsFailure() {
			return summary.Err
		}
		return nil
	},
}

// printEvents writes every log line to stdout and returns the terminal summary
func printEvents(events <-chan model.Event) model.RunSummary {
	var summary model.RunSummary
	for ev := range events {
		switch {
		case ev.Log != nil:
			fmt.Printf("%-9s %s\n", strings.ToUpper(ev.Log.Severity.String()), ev.Log.Message)
		case ev.Done != nil:
			summary = *ev.Done
		}
	}
	fmt.Printf("\n%s (%s, %d sheets, %s)\n", summary.Message, summary.Status, summary.Exported, summary.Duration().Round(time.Millisecond))
	return summary
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize access and cache the token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if _, err := download.NewAuthenticator(cfg).Client(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Token cached in %s\n", cfg.TokenFile)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		shown := *cfg
		if shown.Mirror.SecretKey != "" {
			shown.Mirror.SecretKey = "********"
		}
		return config.WriteAppConfig(os.Stdout, &shown)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sheets-downloader %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultAppConfigFile, "Path to the TOML config file")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("folder", "f", "", "Drive folder ID or link")
	exportCmd.Flags().StringP("out", "o", "", "Directory for the CSV files (cleared first)")
	exportCmd.Flags().StringSlice("tabs", nil, "Tab names to export (default from config)")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
