// Package projectfs resolves paths under a project root and forwards
// directory, file, archive and module operations to the configured ports.
//
// Every path argument is appended to ProjectRoot as-is, so callers pass
// paths that start with a separator ("/src") when the root has none.
package projectfs

import (
	"github.com/user/projfs/pkg/adapters/logger"
	"github.com/user/projfs/pkg/ports"
)

// Service performs project-relative filesystem operations.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	fs       ports.FileSystem
	archiver ports.Archiver
	loader   ports.ModuleLoader
	logger   ports.Logger
}

// New creates a Service. loader may be nil, in which case ImportModule
// always fails with ErrLoaderUnavailable. A nil log discards output.
func New(fs ports.FileSystem, archiver ports.Archiver, loader ports.ModuleLoader, log ports.Logger) *Service {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Service{
		fs:       fs,
		archiver: archiver,
		loader:   loader,
		logger:   log.WithComponent("projectfs"),
	}
}
