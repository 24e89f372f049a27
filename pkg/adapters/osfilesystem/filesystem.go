// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/user/projfs/pkg/ports"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the entire contents of a file.
func (fsys *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating or truncating it.
func (fsys *FileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}

// MkdirAll creates a directory and all parent directories.
func (fsys *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// ReadDir lists the immediate children of a directory.
func (fsys *FileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Exists checks if a file or directory exists.
func (fsys *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove deletes a single file.
// os.Remove would also delete an empty directory, so directories are rejected up front.
func (fsys *FileSystem) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "remove", Path: path, Err: syscall.EISDIR}
	}
	return os.Remove(path)
}

// RemoveAll deletes a path and everything below it.
func (fsys *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CopyFile copies a single file, overwriting dst.
// Copying a file onto itself leaves it untouched.
func (fsys *FileSystem) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: syscall.EISDIR}
	}
	return copyFile(src, dst, info)
}

// CopyDir copies the tree rooted at src into dst.
// Existing files under dst are overwritten, other entries are left alone.
// A directory copied onto itself is left untouched, and dst may not lie
// inside src.
func (fsys *FileSystem) CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: syscall.ENOTDIR}
	}
	if sameFile(info, dst) {
		return nil
	}
	inside, err := isSubdir(src, dst)
	if err != nil {
		return err
	}
	if inside {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrInvalid}
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, dirPerm)
		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(path, target, info)
		}
	})
}

// sameFile reports whether dst already names the file described by info.
func sameFile(info fs.FileInfo, dst string) bool {
	dstInfo, err := os.Stat(dst)
	return err == nil && os.SameFile(info, dstInfo)
}

// isSubdir reports whether dst lies strictly below src once both are made absolute.
func isSubdir(src, dst string) (bool, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return false, err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absSrc, absDst)
	if err != nil {
		return false, nil
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	return !filepath.IsAbs(rel), nil
}

func copyFile(src, dst string, info fs.FileInfo) error {
	// dst is opened with O_TRUNC, which would empty src first
	if sameFile(info, dst) {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	// Replace whatever is at dst, the way a file copy would overwrite.
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(link, dst)
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
