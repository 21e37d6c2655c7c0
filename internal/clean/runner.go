package clean

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

// ErrBusy is returned when an operation is requested while another one
// is still running.
var ErrBusy = errors.New("another scan or clean is already running")

// Runner executes scans and cleans one at a time on a single background
// worker and streams their progress through a Reporter.
type Runner struct {
	fs        afero.Fs
	targets   []config.CleanTarget
	protected []string
	pool      *ants.Pool

	busy   atomic.Bool
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewRunner creates a runner over fs with the given target catalogue and
// never-delete list.
func NewRunner(fs afero.Fs, targets []config.CleanTarget, protected []string) (*Runner, error) {
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Runner{
		fs:        fs,
		targets:   targets,
		protected: protected,
		pool:      pool,
	}, nil
}

// Busy reports whether an operation is in flight.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// StartScan scans the category targets. opts is snapshotted now.
func (r *Runner) StartScan(ctx context.Context, opts Options) (*Reporter, error) {
	scanner := NewScanner(r.fs, r.targets, opts)
	return r.start(ctx, func(ctx context.Context, rep *Reporter) {
		res := scanner.Scan(ctx, rep.Progress())
		rep.FinishScan(res, scanSummary(res))
	})
}

// StartScanPaths scans user-chosen roots instead of the catalogue.
func (r *Runner) StartScanPaths(ctx context.Context, roots []string, opts Options) (*Reporter, error) {
	scanner := NewScanner(r.fs, nil, opts)
	roots = append([]string(nil), roots...)
	return r.start(ctx, func(ctx context.Context, rep *Reporter) {
		res := scanner.ScanPaths(ctx, roots, rep.Progress())
		rep.FinishScan(res, scanSummary(res))
	})
}

// StartClean deletes files. The slice is copied before the worker starts.
func (r *Runner) StartClean(ctx context.Context, files []FileRecord) (*Reporter, error) {
	cleaner := NewCleaner(r.fs, r.protected)
	files = append([]FileRecord(nil), files...)
	return r.start(ctx, func(ctx context.Context, rep *Reporter) {
		rep.Report(0, fmt.Sprintf("Removing %d %s…", len(files), core.Plural(len(files), "file")))
		res := cleaner.Clean(ctx, files, rep.Progress())
		rep.FinishClean(res, cleanSummary(res))
	})
}

// Stop asks the running operation to finish early. It is a no-op when
// nothing is running.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// Release stops the worker pool. The runner cannot be used afterwards.
func (r *Runner) Release() {
	r.Stop()
	r.pool.Release()
}

func (r *Runner) start(parent context.Context, task func(context.Context, *Reporter)) (*Reporter, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	ctx, cancel := context.WithCancel(parent)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	rep := NewReporter()
	err := r.pool.Submit(func() {
		defer func() {
			if p := recover(); p != nil {
				logger.Get().Error().Interface("panic", p).Msg("worker crashed")
			}
			r.mu.Lock()
			r.cancel = nil
			r.mu.Unlock()
			cancel()
			r.busy.Store(false)
			rep.Close()
		}()
		task(ctx, rep)
	})
	if err != nil {
		cancel()
		r.mu.Lock()
		r.cancel = nil
		r.mu.Unlock()
		r.busy.Store(false)
		rep.Close()
		return nil, fmt.Errorf("submit task: %w", err)
	}
	return rep, nil
}

func scanSummary(res ScanResult) string {
	prefix := "Scan complete"
	if res.Cancelled {
		prefix = "Scan cancelled"
	}
	return fmt.Sprintf("%s: %d %s, %s", prefix, res.Count, core.Plural(res.Count, "file"), core.FormatSize(res.TotalSize))
}

func cleanSummary(res CleanResult) string {
	prefix := "Clean complete"
	if res.Cancelled {
		prefix = "Clean cancelled"
	}
	return fmt.Sprintf("%s: removed %d %s (%s), %d failed", prefix,
		res.CleanedCount, core.Plural(res.CleanedCount, "file"), core.FormatSize(res.CleanedSize), res.FailedCount)
}
