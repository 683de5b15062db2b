package export

// Package export turns the spreadsheets found under a Drive folder into CSV
// files. A run clears the save directory, drains the folder walk, then for
// every spreadsheet exports each target tab it has. Per-item failures become
// log events and the run goes on; only unexpected failures abort it.
