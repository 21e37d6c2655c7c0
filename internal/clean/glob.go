package clean

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// expandPath resolves a target path that may contain glob patterns into
// the existing directories it names. Plain paths are returned unchanged;
// the caller probes them for existence.
func expandPath(fs afero.Fs, pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}

	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	if info, err := fs.Stat(base); err != nil || !info.IsDir() {
		return nil, nil
	}

	fsys := afero.NewIOFS(afero.NewBasePathFs(fs, base))
	matches, err := doublestar.Glob(fsys, rest)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(base, filepath.FromSlash(m)))
	}
	return out, nil
}
