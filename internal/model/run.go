package model

import (
	"fmt"
	"time"
)

// LogEvent is a single progress line streamed to the UI
type LogEvent struct {
	Message  string
	Severity Severity
	Time     time.Time
}

// NewLogEvent creates a log event stamped with the current time
func NewLogEvent(severity Severity, format string, args ...any) LogEvent {
	return LogEvent{
		Message:  fmt.Sprintf(format, args...),
		Severity: severity,
		Time:     time.Now(),
	}
}

// RunSummary is the terminal result of one run
type RunSummary struct {
	RunID    string
	Status   RunStatus
	Files    int // spreadsheets discovered
	Exported int // sheets written to disk
	Message  string
	Err      error // set when Status is RunStatusFailed
	SaveDir  string
	Started  time.Time
	Finished time.Time
}

// Duration returns how long the run took
func (rs *RunSummary) Duration() time.Duration {
	if rs.Finished.IsZero() || rs.Started.IsZero() {
		return 0
	}
	return rs.Finished.Sub(rs.Started)
}

// Event is either a log line or the terminal summary of a run.
// Exactly one of Log and Done is set.
type Event struct {
	Log  *LogEvent
	Done *RunSummary
}

// IsTerminal returns true for the completion event
func (e Event) IsTerminal() bool {
	return e.Done != nil
}
