package clean

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

// categorySlice is the share of the progress bar each category owns.
const categorySlice = 25

// Scanner runs the category scanners over a fixed target catalogue.
type Scanner struct {
	fs       afero.Fs
	targets  []config.CleanTarget
	opts     Options
	warnings warnings
}

// NewScanner creates a scanner. opts is copied; later changes to the
// caller's settings do not affect a scan in flight.
func NewScanner(fs afero.Fs, targets []config.CleanTarget, opts Options) *Scanner {
	opts.Exclude = append([]string(nil), opts.Exclude...)
	opts.Extensions = append([]string(nil), opts.Extensions...)
	opts.Categories = append([]string(nil), opts.Categories...)
	return &Scanner{
		fs:      fs,
		targets: append([]config.CleanTarget(nil), targets...),
		opts:    opts,
	}
}

// Warnings returns the problems met by all scans run so far.
func (s *Scanner) Warnings() []string {
	return append([]string(nil), s.warnings.list...)
}

// ScanTemp scans the system temporary directory.
func (s *Scanner) ScanTemp(ctx context.Context) []FileRecord {
	return s.ScanCategory(ctx, config.CategoryTemp)
}

// ScanRecycleBin scans the platform recycle bin or trash folder.
func (s *Scanner) ScanRecycleBin(ctx context.Context) []FileRecord {
	return s.ScanCategory(ctx, config.CategoryTrash)
}

// ScanBrowserCaches scans every browser cache directory that exists.
func (s *Scanner) ScanBrowserCaches(ctx context.Context) []FileRecord {
	return s.ScanCategory(ctx, config.CategoryBrowser)
}

// ScanLogs scans the system log directories for *.log files.
func (s *Scanner) ScanLogs(ctx context.Context) []FileRecord {
	return s.ScanCategory(ctx, config.CategoryLogs)
}

// ScanCategory scans every target of one category. Missing directories
// contribute nothing.
func (s *Scanner) ScanCategory(ctx context.Context, category string) []FileRecord {
	var records []FileRecord
	for _, t := range config.GetTargetsByCategory(s.targets, category) {
		filter := Filter{
			Exclude:    s.opts.Exclude,
			Extensions: s.opts.Extensions,
			MaxDepth:   s.opts.MaxDepth,
		}
		if t.Extensions != nil {
			filter.Extensions = t.Extensions
		}

		for _, p := range t.Paths {
			if p == "" {
				continue
			}
			roots, err := expandPath(s.fs, p)
			if err != nil {
				s.warnings.add(fmt.Sprintf("%s: bad pattern %q: %v", t.Name, p, err))
				continue
			}
			for _, root := range roots {
				if ctx.Err() != nil {
					return records
				}
				if info, err := s.fs.Stat(root); err != nil || !info.IsDir() {
					continue
				}
				records = append(records, s.scanRoot(ctx, root, category, filter)...)
			}
		}
	}
	return records
}

// scanRoot walks one directory. A panic inside the walk is logged and
// the records gathered before it are kept.
func (s *Scanner) scanRoot(ctx context.Context, root, category string, filter Filter) (records []FileRecord) {
	w := NewWalker(s.fs, filter)
	defer func() {
		s.warnings.addAll(w.Warnings())
		if r := recover(); r != nil {
			logger.Get().Error().
				Str("category", category).
				Str("root", root).
				Interface("panic", r).
				Msg("scan aborted, keeping partial results")
			s.warnings.add(fmt.Sprintf("scan of %s aborted: %v", root, r))
		}
	}()

	_ = w.Walk(ctx, root, func(rec FileRecord) {
		rec.Category = category
		records = append(records, rec)
	})

	logger.Get().Debug().
		Str("category", category).
		Str("root", root).
		Int("files", len(records)).
		Msg("scanned")
	return records
}

func (s *Scanner) selected() []string {
	if len(s.opts.Categories) == 0 {
		return config.Categories
	}
	var out []string
	for _, c := range config.Categories {
		for _, want := range s.opts.Categories {
			if c == want {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Scan runs the category scanners in their fixed order (temp, trash,
// browser, logs) and aggregates the results. Each category advances the
// progress bar by a fixed slice regardless of how much it finds.
func (s *Scanner) Scan(ctx context.Context, progress ProgressFunc) ScanResult {
	var parts [][]FileRecord
	cancelled := false

	for i, c := range config.Categories {
		start := i * categorySlice
		if !contains(s.selected(), c) {
			progress.report(start+categorySlice, "Skipping "+config.CategoryLabel(c))
			continue
		}
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		progress.report(start, "Scanning "+config.CategoryLabel(c)+"…")
		recs := s.ScanCategory(ctx, c)
		parts = append(parts, recs)

		var size uint64
		for _, r := range recs {
			size += r.Size
		}
		progress.report(start+categorySlice, fmt.Sprintf("%s: %d %s, %s",
			config.CategoryLabel(c), len(recs), core.Plural(len(recs), "file"), core.FormatSize(size)))
	}
	if ctx.Err() != nil {
		cancelled = true
	}

	return s.finish(parts, cancelled)
}

// ScanPaths scans arbitrary directories with the user filter. Progress is
// split evenly between roots.
func (s *Scanner) ScanPaths(ctx context.Context, roots []string, progress ProgressFunc) ScanResult {
	filter := Filter{
		Exclude:    s.opts.Exclude,
		Extensions: s.opts.Extensions,
		MaxDepth:   s.opts.MaxDepth,
	}

	var parts [][]FileRecord
	for i, root := range roots {
		if ctx.Err() != nil {
			break
		}
		progress.report(i*100/len(roots), "Scanning "+root+"…")
		parts = append(parts, s.scanRoot(ctx, root, "", filter))
	}

	return s.finish(parts, ctx.Err() != nil)
}

func (s *Scanner) finish(parts [][]FileRecord, cancelled bool) ScanResult {
	res := Aggregate(s.opts.Dedupe, parts...)
	res.Warnings = s.Warnings()
	res.Cancelled = cancelled

	logger.Get().Info().
		Int("files", res.Count).
		Uint64("bytes", res.TotalSize).
		Int("warnings", len(res.Warnings)).
		Bool("cancelled", cancelled).
		Msg("scan finished")
	return res
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
