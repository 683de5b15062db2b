package model

// Package model defines domain data structures used across the app: remote
// items found while walking a Drive folder, exported tables, progress log
// events and run summaries. Structures carry no behavior beyond small helpers
// so the UI and the CLI can render them directly.
