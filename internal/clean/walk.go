package clean

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

// Filter controls what a Walker yields.
type Filter struct {
	// Exclude holds directory and file paths compared by exact string
	// equality. No case folding, trailing-slash trimming, or symlink
	// resolution is applied: excluding "/tmp/foo" leaves "/tmp/foo/"
	// and "/tmp/foobar" alone.
	Exclude []string
	// Extensions is a suffix allow-list. Empty accepts every file.
	Extensions []string
	// MaxDepth is the deepest directory level descended below the root.
	// 0 means unlimited.
	MaxDepth int
}

// Walker enumerates files below a root directory.
type Walker struct {
	fs           afero.Fs
	exclude      map[string]struct{}
	extensions   []string
	maxDepth     int
	warnings     warnings
	scannedCount atomic.Int64
}

// NewWalker creates a walker over fs.
func NewWalker(fs afero.Fs, f Filter) *Walker {
	exc := make(map[string]struct{}, len(f.Exclude))
	for _, e := range f.Exclude {
		exc[e] = struct{}{}
	}
	return &Walker{
		fs:         fs,
		exclude:    exc,
		extensions: append([]string(nil), f.Extensions...),
		maxDepth:   f.MaxDepth,
	}
}

// Warnings returns the problems met while walking.
func (w *Walker) Warnings() []string {
	return append([]string(nil), w.warnings.list...)
}

// ScannedCount returns the number of entries visited so far.
func (w *Walker) ScannedCount() int64 {
	return w.scannedCount.Load()
}

// Collect walks root and returns every matching file.
func (w *Walker) Collect(ctx context.Context, root string) []FileRecord {
	var out []FileRecord
	_ = w.Walk(ctx, root, func(rec FileRecord) {
		out = append(out, rec)
	})
	return out
}

// Walk calls visit for every matching file below root. A missing root
// yields nothing and no error. Entries that cannot be read or stat'ed are
// skipped and noted in Warnings. The only error returned is ctx.Err()
// when the walk is cancelled.
func (w *Walker) Walk(ctx context.Context, root string, visit func(FileRecord)) error {
	rootInfo, err := lstat(w.fs, root)
	if err != nil {
		logger.Get().Debug().Str("root", root).Err(err).Msg("root not found, nothing to scan")
		return nil
	}
	if w.isExcluded(root) {
		return nil
	}

	// A linked root is followed; links below it are not. The trailing
	// separator makes lstat resolve the link while child paths still
	// read as root/<name>.
	walkRoot := root
	if rootInfo.Mode()&os.ModeSymlink != 0 {
		if target, err := w.fs.Stat(root); err == nil && target.IsDir() {
			walkRoot = strings.TrimRight(root, string(filepath.Separator)) + string(filepath.Separator)
		}
	}

	return afero.Walk(w.fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		w.scannedCount.Add(1)

		isDir := info != nil && info.IsDir()

		if w.isExcluded(path) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if err != nil {
			// Permission denied, vanished entry, unreadable directory.
			w.warnings.add("cannot read " + path + ": " + err.Error())
			if isDir && path != walkRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			if w.maxDepth > 0 && depth(walkRoot, path) > w.maxDepth {
				w.warnings.add("max depth reached, skipping " + path)
				return filepath.SkipDir
			}
			return nil
		}

		if !w.matchesExtension(info.Name()) {
			return nil
		}

		size := info.Size()
		if info.Mode()&os.ModeSymlink != 0 {
			// Never descend through links; size regular-file targets only.
			target, statErr := w.fs.Stat(path)
			if statErr != nil {
				w.warnings.add("cannot stat " + path + ": " + statErr.Error())
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
			size = target.Size()
		}
		if size < 0 {
			size = 0
		}

		visit(FileRecord{
			Path: path,
			Name: info.Name(),
			Size: uint64(size),
		})
		return nil
	})
}

func (w *Walker) isExcluded(path string) bool {
	_, ok := w.exclude[path]
	return ok
}

func (w *Walker) matchesExtension(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// depth returns how many directory levels path sits below root.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// lstat stats path without following a final symlink when fs supports it.
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
