// Package moduleloader provides ports.ModuleLoader implementations.
//
// Registry serves exports that were registered in-process under a path.
// SharedObject opens Go plugins built with -buildmode=plugin.
package moduleloader

import (
	"fmt"
	"io/fs"
	"maps"
	"sync"

	"github.com/user/projfs/pkg/ports"
)

// Registry maps module paths to exports registered at runtime.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]map[string]any),
	}
}

// Register makes exports loadable under path, replacing any previous entry.
func (r *Registry) Register(path string, exports map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[path] = maps.Clone(exports)
}

// Unregister removes the module at path.
func (r *Registry) Unregister(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modules, path)
}

// Paths returns every registered module path.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.modules))
	for p := range r.modules {
		paths = append(paths, p)
	}
	return paths
}

// Load returns a copy of the exports registered under path.
func (r *Registry) Load(path string) (map[string]any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exports, ok := r.modules[path]
	if !ok {
		return nil, fmt.Errorf("module %s: %w", path, fs.ErrNotExist)
	}
	return maps.Clone(exports), nil
}

// Ensure Registry implements ports.ModuleLoader
var _ ports.ModuleLoader = (*Registry)(nil)
