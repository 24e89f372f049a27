package projectfs

import (
	"github.com/user/projfs/pkg/adapters/logger"
	"github.com/user/projfs/pkg/adapters/moduleloader"
	"github.com/user/projfs/pkg/adapters/osfilesystem"
	"github.com/user/projfs/pkg/adapters/ziparchiver"
)

// NewDefault creates a Service backed by the local filesystem and the zip
// found on PATH. Modules are served from the returned registry.
//
// Example:
//
//	svc, modules := projectfs.NewDefault()
//	modules.Register("/srv/app/plugins/hello", map[string]any{"Greeting": "hi"})
//	exports, err := svc.ImportModule(projectfs.DirectoryInput{
//	    ProjectRoot: "/srv/app",
//	    Path:        "/plugins/hello",
//	})
func NewDefault() (*Service, *moduleloader.Registry) {
	modules := moduleloader.NewRegistry()
	svc := New(
		osfilesystem.New(),
		ziparchiver.New(""),
		modules,
		logger.NewNoop(),
	)
	return svc, modules
}
