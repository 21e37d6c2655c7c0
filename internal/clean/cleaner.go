package clean

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

// Cleaner deletes previously scanned files.
type Cleaner struct {
	fs        afero.Fs
	protected []string
}

// NewCleaner creates a cleaner. Paths in protected are never removed;
// attempts count as failures.
func NewCleaner(fs afero.Fs, protected []string) *Cleaner {
	return &Cleaner{
		fs:        fs,
		protected: append([]string(nil), protected...),
	}
}

// Clean removes each record from disk. Directories are removed
// recursively. A record whose path is gone, is protected, or fails to
// delete is counted in FailedCount and the loop moves on; there is no
// retry and no rollback.
//
// ctx is checked once before each record. Cancelling it stops the loop
// after the deletion in progress completes.
func (c *Cleaner) Clean(ctx context.Context, files []FileRecord, progress ProgressFunc) CleanResult {
	var res CleanResult
	var warn warnings
	log := logger.Get()
	total := len(files)

	for i, f := range files {
		if ctx.Err() != nil {
			res.Cancelled = true
			log.Info().Int("done", i).Int("total", total).Msg("clean cancelled")
			break
		}

		msg := "Removed " + f.Name
		if err := c.remove(f.Path); err != nil {
			res.FailedCount++
			warn.add(err.Error())
			log.Debug().Str("path", f.Path).Err(err).Msg("delete failed")
			msg = "Failed to remove " + f.Name
		} else {
			res.CleanedCount++
			res.CleanedSize += f.Size
		}

		progress.report((i+1)*100/total, msg)
	}

	res.Warnings = warn.list
	log.Info().
		Int("cleaned", res.CleanedCount).
		Uint64("bytes", res.CleanedSize).
		Int("failed", res.FailedCount).
		Msg("clean finished")
	return res
}

func (c *Cleaner) remove(path string) error {
	info, err := lstat(c.fs, path)
	if err != nil {
		return fmt.Errorf("%s: no longer exists", path)
	}
	if core.IsProtected(path, c.protected) {
		return fmt.Errorf("%s: protected path", path)
	}
	if info.IsDir() {
		err = c.fs.RemoveAll(path)
	} else {
		err = c.fs.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
