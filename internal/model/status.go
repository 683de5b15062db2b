package model

// Severity classifies a progress log line shown to the user
type Severity string

const (
	// SeverityInfo is a routine progress step
	SeverityInfo Severity = "info"

	// SeveritySuccess marks a completed step, e.g. a written CSV file
	SeveritySuccess Severity = "success"

	// SeverityError marks a recovered per-item failure
	SeverityError Severity = "error"

	// SeverityWarn marks a skipped item
	SeverityWarn Severity = "warn"

	// SeverityHighlight marks the start of a new file
	SeverityHighlight Severity = "highlight"

	// SeveritySystem marks housekeeping such as directory clearing
	SeveritySystem Severity = "system"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// Severities returns all severities in display order
func Severities() []Severity {
	return []Severity{
		SeverityInfo,
		SeveritySuccess,
		SeverityError,
		SeverityWarn,
		SeverityHighlight,
		SeveritySystem,
	}
}

// RunStatus represents how a run ended
type RunStatus string

const (
	// RunStatusCompleted means every discovered file was processed
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusEmpty means no spreadsheet was found under the root folder
	RunStatusEmpty RunStatus = "Empty"

	// RunStatusFailed means the run aborted on a fatal error
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsFailure returns true if the run aborted
func (rs RunStatus) IsFailure() bool {
	return rs == RunStatusFailed
}
