package mocks

import (
	"sync"

	"github.com/user/projfs/pkg/ports"
)

// ArchiveCall records the arguments of one Archive invocation.
type ArchiveCall struct {
	SourceDir   string
	ArchivePath string
}

// Archiver is a mock implementation of ports.Archiver.
type Archiver struct {
	mu    sync.Mutex
	calls []ArchiveCall

	// Stdout is returned by Archive when ArchiveFunc is nil.
	Stdout string

	ArchiveFunc func(sourceDir, archivePath string) (string, error)
}

func (m *Archiver) Archive(sourceDir, archivePath string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ArchiveCall{SourceDir: sourceDir, ArchivePath: archivePath})
	m.mu.Unlock()

	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(sourceDir, archivePath)
	}
	return m.Stdout, nil
}

// Calls returns the recorded invocations (for test verification).
func (m *Archiver) Calls() []ArchiveCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ArchiveCall(nil), m.calls...)
}

// ArchiveError is a ports.ArchiveError with fixed diagnostics.
type ArchiveError struct {
	Message string
	Stderr  string
}

func (e *ArchiveError) Error() string       { return e.Message }
func (e *ArchiveError) Diagnostics() string { return e.Stderr }

var (
	_ ports.Archiver     = (*Archiver)(nil)
	_ ports.ArchiveError = (*ArchiveError)(nil)
)
