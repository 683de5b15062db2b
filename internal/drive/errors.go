package drive

import (
	"errors"
	"fmt"
)

// ErrTabsUnavailable means a spreadsheet's tab list could not be read
var ErrTabsUnavailable = errors.New("tab names unavailable")

// RemoteAccessError is a listing failure for one folder
type RemoteAccessError struct {
	FolderID string
	Err      error
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("folder access error (ID: %s): %v", e.FolderID, e.Err)
}

func (e *RemoteAccessError) Unwrap() error {
	return e.Err
}

// TabFetchError is an export failure for one tab of one spreadsheet
type TabFetchError struct {
	SpreadsheetID string
	TabName       string
	Err           error
}

func (e *TabFetchError) Error() string {
	return fmt.Sprintf("fetching tab %q of %s: %v", e.TabName, e.SpreadsheetID, e.Err)
}

func (e *TabFetchError) Unwrap() error {
	return e.Err
}
