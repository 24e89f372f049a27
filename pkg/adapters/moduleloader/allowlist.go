package moduleloader

import (
	"fmt"

	"github.com/user/projfs/pkg/ports"
)

// Allowlist gates another loader so that only listed paths can be loaded.
type Allowlist struct {
	next    ports.ModuleLoader
	allowed map[string]struct{}
}

// NewAllowlist wraps next, permitting only the given paths.
func NewAllowlist(next ports.ModuleLoader, paths ...string) *Allowlist {
	allowed := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		allowed[p] = struct{}{}
	}
	return &Allowlist{next: next, allowed: allowed}
}

// Load forwards to the wrapped loader when path is allowed.
func (a *Allowlist) Load(path string) (map[string]any, error) {
	if _, ok := a.allowed[path]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAllowed, path)
	}
	return a.next.Load(path)
}

// Ensure Allowlist implements ports.ModuleLoader
var _ ports.ModuleLoader = (*Allowlist)(nil)
