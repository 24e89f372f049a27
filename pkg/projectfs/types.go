package projectfs

// DirectoryInput addresses a single path under a project root.
type DirectoryInput struct {
	ProjectRoot string
	Path        string
}

// CopyInput addresses a source and a target under the same project root.
type CopyInput struct {
	ProjectRoot string
	Source      string
	Target      string
}

// ZipInput describes an archive of Source written to Target/Name.zip.
type ZipInput struct {
	CopyInput
	Name string
}

// FileWriteInput carries the full text to write to Path.
type FileWriteInput struct {
	DirectoryInput
	Content string
}

// resolve joins root and path by plain concatenation. Callers supply the separator.
func resolve(root, path string) string {
	return root + path
}
