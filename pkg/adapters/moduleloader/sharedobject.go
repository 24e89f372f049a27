package moduleloader

import "github.com/user/projfs/pkg/ports"

// ExportsSymbol is the package-level variable a plugin must define:
//
//	var Exports = map[string]any{"Handler": handle}
const ExportsSymbol = "Exports"

// SharedObject loads exports from Go plugins.
type SharedObject struct{}

// NewSharedObject creates a new SharedObject loader.
func NewSharedObject() *SharedObject {
	return &SharedObject{}
}

// Load opens the plugin at path and returns a copy of its Exports.
func (s *SharedObject) Load(path string) (map[string]any, error) {
	return loadPlugin(path)
}

// Ensure SharedObject implements ports.ModuleLoader
var _ ports.ModuleLoader = (*SharedObject)(nil)
