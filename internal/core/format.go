// Package core holds small helpers shared by every command.
package core

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count with binary units ("1.5 MiB").
func FormatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// ParseSize accepts human sizes such as "100MB" or "1.5GiB".
func ParseSize(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}

// Plural returns word with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// IsProtected reports whether path is exactly one of the never-delete
// paths. Only the listed path itself is protected, not its children:
// temp folders live under C:\Users and must stay deletable.
func IsProtected(path string, protected []string) bool {
	if path == "" {
		return true
	}
	cleaned := filepath.Clean(path)
	for _, p := range protected {
		if p == "" {
			continue
		}
		if samePath(cleaned, filepath.Clean(p)) {
			return true
		}
	}
	return false
}

func samePath(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
