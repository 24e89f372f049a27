//go:build (linux || darwin || freebsd) && cgo

package moduleloader

import (
	"fmt"
	"maps"
	"os"
	"plugin"
)

func loadPlugin(path string) (map[string]any, error) {
	// plugin.Open reports missing files with a dlopen message; stat first so
	// callers can match fs.ErrNotExist.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %w", path, err)
	}

	sym, err := p.Lookup(ExportsSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExports, path)
	}

	switch exports := sym.(type) {
	case *map[string]any:
		return maps.Clone(*exports), nil
	case map[string]any:
		return maps.Clone(exports), nil
	default:
		return nil, fmt.Errorf("%w: %s has type %T", ErrNoExports, path, sym)
	}
}
