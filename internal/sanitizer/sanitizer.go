package sanitizer

import (
	"path"
	"strings"
	"unicode"
)

// CleanListingLine trims the whitespace and carriage returns the device shell
// leaves on each line of a listing.
// Returns the cleaned line and a boolean indicating if changes were made
func CleanListingLine(line string) (string, bool) {
	cleaned := strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\r'
	})
	return cleaned, cleaned != line
}

// SafeBaseName returns the base name of a remote listing entry when it is safe
// to use as a local file name. Entries outside root, traversal components and
// names with separators or control characters are rejected.
func SafeBaseName(remotePath, root string) (string, bool) {
	cleanedLine, _ := CleanListingLine(remotePath)
	if cleanedLine == "" {
		return "", false
	}

	if strings.Contains(cleanedLine, "/../") || strings.HasSuffix(cleanedLine, "/..") {
		return "", false
	}

	if root != "" {
		dir := path.Clean(root)
		if path.Dir(path.Clean(cleanedLine)) != dir {
			return "", false
		}
	}

	name := path.Base(cleanedLine)
	if !ValidName(name) {
		return "", false
	}
	return name, true
}

// ValidName reports whether name is usable as a single path component on
// both the device and the host.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
