package projectfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned when the addressed path does not exist.
	ErrNotFound = errors.New("projectfs: no such file or directory")

	// ErrAlreadyExists is the condition MakeDirectory treats as success.
	ErrAlreadyExists = errors.New("projectfs: already exists")

	// ErrContentRequired is returned by WriteFile when no content is given.
	ErrContentRequired = errors.New("projectfs: content is required")

	// ErrLoaderUnavailable is returned by ImportModule when no module loader is configured.
	ErrLoaderUnavailable = errors.New("projectfs: no module loader configured")
)

// unknownErrorMessage is reported when a failure carries no message of its own.
const unknownErrorMessage = "Unknown Error"

// OperationError wraps an unexpected failure while creating a directory.
type OperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return unknownErrorMessage
	}
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ZipError reports a zip process that exited non-zero.
// Its message is the process's standard error.
type ZipError struct {
	Stderr string
	Err    error
}

func (e *ZipError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return unknownErrorMessage
}

func (e *ZipError) Unwrap() error {
	return e.Err
}

// pathError ties a failed operation to the path it was given and, when the
// failure is recognized, to one of the package sentinels.
type pathError struct {
	op   string
	path string
	kind error
	err  error
}

// Error names the path the filesystem actually failed on, which for a copy
// may be the target or a file inside the source tree.
func (e *pathError) Error() string {
	path, msg := e.path, e.err.Error()
	var pe *fs.PathError
	if errors.As(e.err, &pe) {
		msg = pe.Err.Error()
		if pe.Path != "" {
			path = pe.Path
		}
	}
	return e.op + " " + path + ": " + msg
}

func (e *pathError) Unwrap() []error {
	if e.kind == nil {
		return []error{e.err}
	}
	return []error{e.kind, e.err}
}

// normalize maps filesystem errors onto the package sentinels.
// The original error stays reachable through errors.Is/As.
func normalize(op, path string, err error) error {
	if err == nil {
		return nil
	}
	e := &pathError{op: op, path: path, err: err}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.kind = ErrNotFound
	case errors.Is(err, fs.ErrExist):
		e.kind = ErrAlreadyExists
	}
	return e
}
