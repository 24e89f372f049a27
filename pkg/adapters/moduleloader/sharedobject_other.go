//go:build !((linux || darwin || freebsd) && cgo)

package moduleloader

import (
	"fmt"
	"os"
)

func loadPlugin(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", ErrPlatformNotSupported, path)
}
