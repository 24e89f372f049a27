package mocks

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/user/projfs/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
// Paths are treated as slash-separated; the root "/" always exists.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ReadDirFunc   func(path string) ([]os.DirEntry, error)
	ExistsFunc    func(path string) (bool, error)
	RemoveFunc    func(path string) error
	RemoveAllFunc func(path string) error
	CopyFileFunc  func(src, dst string) error
	CopyDirFunc   func(src, dst string) error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

func (m *FileSystem) ReadFile(p string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path.Clean(p)]; ok {
		return data, nil
	}
	return nil, notExist("open", p)
}

func (m *FileSystem) WriteFile(p string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(p, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p = path.Clean(p)
	if !m.dirs[path.Dir(p)] {
		return notExist("open", p)
	}
	if m.dirs[p] {
		return &fs.PathError{Op: "open", Path: p, Err: fmt.Errorf("is a directory")}
	}
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *FileSystem) MkdirAll(p string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := path.Clean(p); ; dir = path.Dir(dir) {
		if _, ok := m.files[dir]; ok {
			return &fs.PathError{Op: "mkdir", Path: dir, Err: fmt.Errorf("not a directory")}
		}
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
	return nil
}

func (m *FileSystem) ReadDir(p string) ([]os.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = path.Clean(p)
	if !m.dirs[p] {
		return nil, notExist("open", p)
	}

	var entries []os.DirEntry
	for dir := range m.dirs {
		if dir != p && path.Dir(dir) == p {
			entries = append(entries, dirEntry{name: path.Base(dir), dir: true})
		}
	}
	for file, data := range m.files {
		if path.Dir(file) == p {
			entries = append(entries, dirEntry{name: path.Base(file), size: int64(len(data))})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *FileSystem) Exists(p string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = path.Clean(p)
	if _, ok := m.files[p]; ok {
		return true, nil
	}
	return m.dirs[p], nil
}

func (m *FileSystem) Remove(p string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p = path.Clean(p)
	if m.dirs[p] {
		return &fs.PathError{Op: "remove", Path: p, Err: fmt.Errorf("is a directory")}
	}
	if _, ok := m.files[p]; !ok {
		return notExist("remove", p)
	}
	delete(m.files, p)
	return nil
}

func (m *FileSystem) RemoveAll(p string) error {
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p = path.Clean(p)
	prefix := strings.TrimSuffix(p, "/") + "/"
	delete(m.files, p)
	delete(m.dirs, p)
	for file := range m.files {
		if strings.HasPrefix(file, prefix) {
			delete(m.files, file)
		}
	}
	for dir := range m.dirs {
		if strings.HasPrefix(dir, prefix) {
			delete(m.dirs, dir)
		}
	}
	m.dirs["/"] = true
	return nil
}

func (m *FileSystem) CopyFile(src, dst string) error {
	if m.CopyFileFunc != nil {
		return m.CopyFileFunc(src, dst)
	}
	data, err := m.ReadFile(src)
	if err != nil {
		return err
	}
	return m.WriteFile(dst, data)
}

func (m *FileSystem) CopyDir(src, dst string) error {
	if m.CopyDirFunc != nil {
		return m.CopyDirFunc(src, dst)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	src, dst = path.Clean(src), path.Clean(dst)
	if !m.dirs[src] {
		return notExist("lstat", src)
	}
	prefix := strings.TrimSuffix(src, "/") + "/"
	if strings.HasPrefix(dst, prefix) {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrInvalid}
	}
	dirs := []string{}
	for dir := range m.dirs {
		if dir == src || strings.HasPrefix(dir, prefix) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		m.dirs[path.Join(dst, strings.TrimPrefix(dir, src))] = true
	}
	for d := path.Dir(dst); d != "/" && d != "."; d = path.Dir(d) {
		m.dirs[d] = true
	}
	files := map[string][]byte{}
	for file, data := range m.files {
		if strings.HasPrefix(file, prefix) {
			files[path.Join(dst, strings.TrimPrefix(file, src))] = append([]byte(nil), data...)
		}
	}
	for file, data := range files {
		m.files[file] = data
	}
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	return data, ok
}

// dirEntry is the os.DirEntry returned by ReadDir.
type dirEntry struct {
	name string
	dir  bool
	size int64
}

func (e dirEntry) Name() string { return e.name }
func (e dirEntry) IsDir() bool  { return e.dir }
func (e dirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e dirEntry) Info() (fs.FileInfo, error) { return fileInfo(e), nil }

type fileInfo dirEntry

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) Mode() fs.FileMode  { return dirEntry(i).Type() | 0644 }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.dir }
func (i fileInfo) Sys() any           { return nil }

var _ ports.FileSystem = (*FileSystem)(nil)
