package projectfs

import "strings"

// ReadFileBinary returns the contents of ProjectRoot+Path.
func (s *Service) ReadFileBinary(in DirectoryInput) ([]byte, error) {
	path := resolve(in.ProjectRoot, in.Path)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, normalize("read", path, err)
	}
	return data, nil
}

// ReadFileText returns the contents of ProjectRoot+Path as UTF-8 text.
// Invalid byte sequences are replaced with U+FFFD.
func (s *Service) ReadFileText(in DirectoryInput) (string, error) {
	data, err := s.ReadFileBinary(in)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// WriteFile replaces the contents of ProjectRoot+Path with Content,
// creating the file if needed. Empty content is rejected before any I/O.
func (s *Service) WriteFile(in FileWriteInput) error {
	if in.Content == "" {
		return ErrContentRequired
	}

	path := resolve(in.ProjectRoot, in.Path)
	if err := s.fs.WriteFile(path, []byte(in.Content)); err != nil {
		return normalize("write", path, err)
	}
	return nil
}

// RemoveFile deletes the file at ProjectRoot+Path.
// Unlike RemoveDirectory, a missing file is reported as ErrNotFound.
func (s *Service) RemoveFile(in DirectoryInput) error {
	path := resolve(in.ProjectRoot, in.Path)

	if err := s.fs.Remove(path); err != nil {
		return normalize("remove", path, err)
	}
	return nil
}

// CopyFile copies ProjectRoot+Source to ProjectRoot+Target, overwriting the target.
func (s *Service) CopyFile(in CopyInput) error {
	src := resolve(in.ProjectRoot, in.Source)
	dst := resolve(in.ProjectRoot, in.Target)

	if err := s.fs.CopyFile(src, dst); err != nil {
		return normalize("copy", src, err)
	}
	return nil
}

// ImportModule loads the module at ProjectRoot+Path through the configured
// loader and returns its exports by name.
func (s *Service) ImportModule(in DirectoryInput) (map[string]any, error) {
	if s.loader == nil {
		return nil, ErrLoaderUnavailable
	}

	path := resolve(in.ProjectRoot, in.Path)
	exports, err := s.loader.Load(path)
	if err != nil {
		return nil, normalize("import", path, err)
	}
	if exports == nil {
		exports = map[string]any{}
	}
	return exports, nil
}
