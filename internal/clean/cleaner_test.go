package clean_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	. "github.com/onsi/gomega"
)

func makeRecords(t *testing.T, fs afero.Fs, root string, n int) []clean.FileRecord {
	t.Helper()
	recs := make([]clean.FileRecord, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("f%02d.tmp", i)
		path := filepath.Join(root, name)
		writeFile(t, fs, path, 10*(i+1))
		recs = append(recs, clean.FileRecord{Path: path, Name: name, Size: uint64(10 * (i + 1))})
	}
	return recs
}

func TestCleanCountsOutOfBandDeletionsAsFailures(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewOsFs()
	root := t.TempDir()
	recs := makeRecords(t, fs, root, 5)

	g.Expect(fs.Remove(recs[1].Path)).To(Succeed())
	g.Expect(fs.Remove(recs[3].Path)).To(Succeed())

	res := clean.NewCleaner(fs, nil).Clean(context.Background(), recs, nil)

	g.Expect(res.CleanedCount).To(Equal(3))
	g.Expect(res.FailedCount).To(Equal(2))
	g.Expect(res.CleanedSize).To(Equal(uint64(10 + 30 + 50)))
	g.Expect(res.CleanedCount + res.FailedCount).To(BeNumerically("<=", len(recs)))
	g.Expect(res.Warnings).To(HaveLen(2))
	for _, r := range recs {
		g.Expect(exists(fs, r.Path)).To(BeFalse())
	}
}

func TestCleanRemovesDirectoriesRecursively(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	dir := filepath.FromSlash("/cache/blob")
	writeFile(t, fs, filepath.Join(dir, "a"), 1)
	writeFile(t, fs, filepath.Join(dir, "nested", "b"), 1)

	res := clean.NewCleaner(fs, nil).Clean(context.Background(),
		[]clean.FileRecord{{Path: dir, Name: "blob", Size: 2}}, nil)

	g.Expect(res.CleanedCount).To(Equal(1))
	g.Expect(res.CleanedSize).To(Equal(uint64(2)))
	g.Expect(exists(fs, dir)).To(BeFalse())
}

func TestCleanDuplicateRecordFailsSecondTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	path := filepath.FromSlash("/tmp/dup.tmp")
	writeFile(t, fs, path, 4)
	rec := clean.FileRecord{Path: path, Name: "dup.tmp", Size: 4}

	res := clean.NewCleaner(fs, nil).Clean(context.Background(), []clean.FileRecord{rec, rec}, nil)

	g.Expect(res.CleanedCount).To(Equal(1))
	g.Expect(res.FailedCount).To(Equal(1))
}

func TestCleanRefusesProtectedPaths(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	home := filepath.FromSlash("/home/ana")
	writeFile(t, fs, filepath.Join(home, "keep.txt"), 1)

	res := clean.NewCleaner(fs, []string{home}).Clean(context.Background(),
		[]clean.FileRecord{{Path: home, Name: "ana"}}, nil)

	g.Expect(res.CleanedCount).To(Equal(0))
	g.Expect(res.FailedCount).To(Equal(1))
	g.Expect(res.Warnings[0]).To(ContainSubstring("protected"))
	g.Expect(exists(fs, filepath.Join(home, "keep.txt"))).To(BeTrue())
}

func TestCleanStopsAfterCancellation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	recs := makeRecords(t, fs, filepath.FromSlash("/work"), 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int
	progress := func(percent int, msg string) {
		calls++
		if calls == 3 {
			cancel()
		}
	}

	res := clean.NewCleaner(fs, nil).Clean(ctx, recs, progress)

	g.Expect(res.Cancelled).To(BeTrue())
	g.Expect(res.CleanedCount).To(Equal(3))
	g.Expect(res.CleanedCount + res.FailedCount).To(BeNumerically("<=", len(recs)))
	for i, r := range recs {
		g.Expect(exists(fs, r.Path)).To(Equal(i >= 3), r.Path)
	}
}

func TestCleanReportsMonotonicProgress(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	recs := makeRecords(t, fs, filepath.FromSlash("/p"), 4)

	var percents []int
	clean.NewCleaner(fs, nil).Clean(context.Background(), recs, func(p int, _ string) {
		percents = append(percents, p)
	})

	g.Expect(percents).To(Equal([]int{25, 50, 75, 100}))
}

func TestCleanEmptyList(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	res := clean.NewCleaner(afero.NewMemMapFs(), nil).Clean(context.Background(), nil, nil)
	g.Expect(res).To(Equal(clean.CleanResult{}))
}

func TestCleanProgressNamesFailedFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	dir := filepath.FromSlash("/msgs")
	writeFile(t, fs, filepath.Join(dir, "ok.tmp"), 3)
	recs := []clean.FileRecord{
		{Path: filepath.Join(dir, "ok.tmp"), Name: "ok.tmp", Size: 3},
		{Path: filepath.Join(dir, "gone.tmp"), Name: "gone.tmp", Size: 4},
	}

	var messages []string
	res := clean.NewCleaner(fs, nil).Clean(context.Background(), recs, func(_ int, msg string) {
		messages = append(messages, msg)
	})

	g.Expect(res.CleanedCount).To(Equal(1))
	g.Expect(res.FailedCount).To(Equal(1))
	g.Expect(messages).To(Equal([]string{"Removed ok.tmp", "Failed to remove gone.tmp"}))
}
