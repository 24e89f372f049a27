package projectfs

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/user/projfs/pkg/ports"
)

// ListDirectories returns the names of the directories directly under
// ProjectRoot+Path, in the order the filesystem reports them.
func (s *Service) ListDirectories(in DirectoryInput) ([]string, error) {
	path := resolve(in.ProjectRoot, in.Path)

	entries, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, normalize("list", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// MakeDirectory creates ProjectRoot+Path and any missing parents.
// An existing directory is not an error. An existing regular file at the
// same path is: the host reports "not a directory" rather than "exists",
// so it comes back as an *OperationError.
func (s *Service) MakeDirectory(in DirectoryInput) error {
	path := resolve(in.ProjectRoot, in.Path)

	err := s.fs.MkdirAll(path)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return &OperationError{Op: "mkdir", Path: path, Err: err}
}

// RemoveDirectory deletes ProjectRoot+Path recursively.
// A missing directory counts as already removed.
func (s *Service) RemoveDirectory(in DirectoryInput) error {
	path := resolve(in.ProjectRoot, in.Path)

	err := s.fs.RemoveAll(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return normalize("rmdir", path, err)
}

// CopyDirectory copies the tree at ProjectRoot+Source into ProjectRoot+Target.
// A failure part way through leaves whatever was already copied.
func (s *Service) CopyDirectory(in CopyInput) error {
	src := resolve(in.ProjectRoot, in.Source)
	dst := resolve(in.ProjectRoot, in.Target)

	if err := s.fs.CopyDir(src, dst); err != nil {
		return normalize("copy", src, err)
	}
	return nil
}

// ZipFolder archives the contents of ProjectRoot+Source into
// ProjectRoot+Target/Name.zip, creating the target directory first.
// The archiver's standard output is logged, not returned.
func (s *Service) ZipFolder(in ZipInput) error {
	src := resolve(in.ProjectRoot, in.Source)
	targetDir := FormatDirectory(resolve(in.ProjectRoot, in.Target))

	if err := s.MakeDirectory(DirectoryInput{ProjectRoot: in.ProjectRoot, Path: in.Target}); err != nil {
		return err
	}

	archivePath := targetDir + in.Name + ".zip"
	stdout, err := s.archiver.Archive(src, archivePath)
	if err != nil {
		zipErr := &ZipError{Err: err}
		var archiveErr ports.ArchiveError
		if errors.As(err, &archiveErr) {
			zipErr.Stderr = strings.TrimSpace(archiveErr.Diagnostics())
		}
		return zipErr
	}

	s.logger.Info("Zip output:\n%s", strings.TrimRight(stdout, "\n"))
	return nil
}
