package ports

// Archiver abstracts creation of zip archives.
type Archiver interface {
	// Archive packs the contents of sourceDir into archivePath and returns
	// whatever the archiver printed to standard output.
	Archive(sourceDir, archivePath string) (string, error)
}

// ArchiveError is implemented by archiver failures that captured the
// archiver's diagnostic output.
type ArchiveError interface {
	error
	// Diagnostics returns what the archiver wrote to standard error.
	Diagnostics() string
}
