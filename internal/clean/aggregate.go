package clean

import (
	"github.com/cespare/xxhash/v2"
)

// Aggregate concatenates per-category records and computes the totals.
//
// With dedupe off, a file reported by two categories is counted (and
// later deleted) twice; the second delete fails and lands in FailedCount.
// With dedupe on, only the first occurrence of each exact path is kept.
func Aggregate(dedupe bool, parts ...[]FileRecord) ScanResult {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	res := ScanResult{Files: make([]FileRecord, 0, n)}
	var seen map[uint64][]string
	if dedupe {
		seen = make(map[uint64][]string, n)
	}

	for _, p := range parts {
		for _, f := range p {
			if dedupe && isDuplicate(seen, f.Path) {
				continue
			}
			res.Files = append(res.Files, f)
			res.TotalSize += f.Size
		}
	}
	res.Count = len(res.Files)
	return res
}

// isDuplicate records path in seen and reports whether it was there
// already. Buckets hold the full strings so hash collisions stay exact.
func isDuplicate(seen map[uint64][]string, path string) bool {
	h := xxhash.Sum64String(path)
	for _, p := range seen[h] {
		if p == path {
			return true
		}
	}
	seen[h] = append(seen[h], path)
	return false
}
