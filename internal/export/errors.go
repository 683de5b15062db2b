package export

import "fmt"

// RunError is a fatal failure that aborted a run
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("fatal error during export: %v", e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
