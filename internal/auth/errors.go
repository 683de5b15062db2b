package auth

import (
	"errors"
	"fmt"
)

// ErrCredentialsNotFound is returned when the application secret file is missing
var ErrCredentialsNotFound = errors.New("credentials file not found")

// AuthError is a fatal authentication failure. Op names the failed step.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (%s): %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
