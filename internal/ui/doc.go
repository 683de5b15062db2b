package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It collects the folder and save path, starts an export on the runner and
// renders its progress events as colored log lines. All UI strings are
// localized via Localization.
