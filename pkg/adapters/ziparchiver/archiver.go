// Package ziparchiver archives directories by running the external zip utility.
package ziparchiver

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/user/projfs/pkg/ports"
)

// customZipPath is set by SetZipPath and takes priority over every other lookup.
var customZipPath string

// SetZipPath overrides zip discovery with an explicit executable path.
// An empty path restores the default search.
func SetZipPath(path string) {
	customZipPath = path
}

// FindZip searches for zip in PATH and common locations.
// Priority: 1) SetZipPath, 2) ZIP_PATH env, 3) PATH, 4) common locations
func FindZip() (string, error) {
	if customZipPath != "" {
		if _, err := os.Stat(customZipPath); err == nil {
			return customZipPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrZipNotFound, customZipPath)
	}

	if envPath := os.Getenv("ZIP_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: ZIP_PATH %s not found", ErrZipNotFound, envPath)
	}

	execName := "zip"
	if runtime.GOOS == "windows" {
		execName = "zip.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\Program Files\GnuWin32\bin\zip.exe`,
			`C:\Program Files (x86)\GnuWin32\bin\zip.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/usr/bin/zip",
			"/opt/homebrew/bin/zip",
			"/usr/local/bin/zip",
		}
	default:
		commonPaths = []string{
			"/usr/bin/zip",
			"/usr/local/bin/zip",
			"/bin/zip",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrZipNotFound
}

// IsZipAvailable checks if zip is available on the system.
func IsZipAvailable() bool {
	_, err := FindZip()
	return err == nil
}

// Archiver implements ports.Archiver with `zip -r`.
type Archiver struct {
	zipPath string
}

// New creates an Archiver. zipPath may be empty, in which case FindZip
// runs on every call.
func New(zipPath string) *Archiver {
	return &Archiver{zipPath: zipPath}
}

// Archive runs `zip -r archivePath .` inside sourceDir and waits for it to exit.
func (a *Archiver) Archive(sourceDir, archivePath string) (string, error) {
	zipPath := a.zipPath
	if zipPath == "" {
		found, err := FindZip()
		if err != nil {
			return "", &ExitError{Err: err}
		}
		zipPath = found
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(zipPath, "-r", archivePath, ".")
	cmd.Dir = sourceDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return decode(stdout.Bytes()), &ExitError{
			Stderr: decode(stderr.Bytes()),
			Err:    err,
		}
	}

	return decode(stdout.Bytes()), nil
}

// decode interprets process output as UTF-8, replacing invalid sequences.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// Ensure Archiver implements ports.Archiver
var _ ports.Archiver = (*Archiver)(nil)
