package ziparchiver

import (
	"errors"
	"strings"
)

// ErrZipNotFound is returned when no zip executable can be located.
var ErrZipNotFound = errors.New("ziparchiver: zip not found in PATH")

// ExitError reports a zip process that failed to start or exited non-zero.
type ExitError struct {
	// Stderr is the decoded standard error of the process.
	Stderr string
	// Err is the underlying process error.
	Err error
}

func (e *ExitError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	if e.Err != nil {
		return "zip: " + e.Err.Error()
	}
	return "zip: failed"
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Diagnostics returns the captured standard error.
func (e *ExitError) Diagnostics() string {
	return e.Stderr
}
