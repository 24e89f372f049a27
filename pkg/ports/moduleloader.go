package ports

// ModuleLoader resolves a module path to its exported bindings.
// Loading code is a separate trust boundary from reading files, so it is
// never implied by a FileSystem.
type ModuleLoader interface {
	// Load returns the exports of the module at path, keyed by export name.
	Load(path string) (map[string]any, error)
}
