package ports

import "os"

// FileSystem abstracts file system operations.
// Paths are absolute; errors for missing paths must satisfy errors.Is(err, fs.ErrNotExist).
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	// Parent directories are not created.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// ReadDir lists the immediate children of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a single file. Directories are rejected.
	Remove(path string) error

	// RemoveAll deletes a path and everything below it.
	// A missing path is not an error.
	RemoveAll(path string) error

	// CopyFile copies a single file, overwriting dst.
	CopyFile(src, dst string) error

	// CopyDir copies the tree rooted at src into dst, merging with
	// whatever already exists there.
	CopyDir(src, dst string) error
}
