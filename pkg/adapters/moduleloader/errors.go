package moduleloader

import "errors"

var (
	// ErrPlatformNotSupported is returned when shared-object plugins cannot be loaded on this platform.
	ErrPlatformNotSupported = errors.New("moduleloader: platform not supported")

	// ErrNoExports is returned when a plugin does not define an Exports variable.
	ErrNoExports = errors.New("moduleloader: plugin has no Exports symbol")
)

// ErrNotAllowed is returned by Allowlist for modules that were not allowed explicitly.
var ErrNotAllowed = errors.New("moduleloader: module not in allowlist")
