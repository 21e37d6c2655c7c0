package clean

import (
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
)

// maxWarnings caps the warnings kept per operation.
const maxWarnings = 500

// FileRecord is one enumerated file.
type FileRecord struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Size     uint64 `json:"size"`
	Category string `json:"category,omitempty"`
}

// ScanResult is the aggregate output of one scan.
// Count == len(Files) and TotalSize is the sum of Files[i].Size.
type ScanResult struct {
	Files     []FileRecord `json:"files"`
	TotalSize uint64       `json:"total_size"`
	Count     int          `json:"count"`
	Warnings  []string     `json:"warnings,omitempty"`
	Cancelled bool         `json:"cancelled,omitempty"`
}

// CategoryTotal summarises one category of a ScanResult.
type CategoryTotal struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Size     uint64 `json:"size"`
}

// ByCategory returns per-category totals in scan order. Records with a
// category outside the known set are grouped after the known ones.
func (r *ScanResult) ByCategory() []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var extra []string
	for _, f := range r.Files {
		t, ok := totals[f.Category]
		if !ok {
			t = &CategoryTotal{Category: f.Category}
			totals[f.Category] = t
			if !config.IsCategory(f.Category) {
				extra = append(extra, f.Category)
			}
		}
		t.Count++
		t.Size += f.Size
	}

	var out []CategoryTotal
	for _, c := range append(append([]string(nil), config.Categories...), extra...) {
		if t, ok := totals[c]; ok {
			out = append(out, *t)
		}
	}
	return out
}

// CleanResult is the aggregate output of one clean.
// CleanedCount + FailedCount never exceeds the number of input records.
type CleanResult struct {
	CleanedCount int      `json:"cleaned_count"`
	CleanedSize  uint64   `json:"cleaned_size"`
	FailedCount  int      `json:"failed_count"`
	Warnings     []string `json:"warnings,omitempty"`
	Cancelled    bool     `json:"cancelled,omitempty"`
}

// Options is the per-operation snapshot of user settings.
type Options struct {
	// Exclude holds paths compared by exact string equality.
	Exclude []string
	// Extensions is the suffix allow-list; empty accepts every file.
	Extensions []string
	// MaxDepth limits recursion below each root; 0 means unlimited.
	MaxDepth int
	// Dedupe drops repeated paths when aggregating categories.
	Dedupe bool
	// Categories restricts a scan to the named categories; empty means all.
	Categories []string
}

// ProgressFunc receives a percentage in [0,100] and a status line.
type ProgressFunc func(percent int, message string)

func (p ProgressFunc) report(percent int, message string) {
	if p == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p(percent, message)
}

type warnings struct {
	list []string
}

func (w *warnings) add(msg string) {
	if len(w.list) < maxWarnings {
		w.list = append(w.list, msg)
	}
}

func (w *warnings) addAll(msgs []string) {
	for _, m := range msgs {
		w.add(m)
	}
}
