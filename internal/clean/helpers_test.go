package clean_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
)

// writeFile creates path (and its parents) on fs with size bytes.
func writeFile(t *testing.T, fs afero.Fs, path string, size int) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, []byte(strings.Repeat("x", size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func paths(recs []clean.FileRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Path)
	}
	sort.Strings(out)
	return out
}

func sumSizes(recs []clean.FileRecord) uint64 {
	var total uint64
	for _, r := range recs {
		total += r.Size
	}
	return total
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
