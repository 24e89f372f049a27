package projectfs

import "strings"

// FormatDirectory returns dir with exactly one trailing slash.
func FormatDirectory(dir string) string {
	return strings.TrimRight(dir, "/") + "/"
}
