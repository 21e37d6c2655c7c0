package clean_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	. "github.com/onsi/gomega"
)

// gateFs blocks the first Open of dir until release is closed.
type gateFs struct {
	afero.Fs
	dir     string
	entered chan struct{}
	release chan struct{}
	once    *sync.Once
}

func (f gateFs) Open(name string) (afero.File, error) {
	if name == f.dir {
		f.once.Do(func() {
			close(f.entered)
			<-f.release
		})
	}
	return f.Fs.Open(name)
}

func newRunner(t *testing.T, fs afero.Fs) *clean.Runner {
	t.Helper()
	r, err := clean.NewRunner(fs, config.GetCleanTargets(testEnv()), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	t.Cleanup(r.Release)
	return r
}

func TestRunnerScanThenClean(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := afero.NewMemMapFs()
	seedHome(t, fs)
	r := newRunner(t, fs)

	rep, err := r.StartScan(context.Background(), clean.Options{Categories: []string{config.CategoryTemp}})
	g.Expect(err).ToNot(HaveOccurred())

	var messages []string
	last := clean.Wait(rep, func(ev clean.Event) { messages = append(messages, ev.Message) })
	g.Expect(last.Scan).ToNot(BeNil())
	g.Expect(last.Scan.Count).To(Equal(2))
	g.Expect(messages[len(messages)-1]).To(ContainSubstring("Scan complete: 2 files"))
	g.Expect(r.Busy()).To(BeFalse())

	rep, err = r.StartClean(context.Background(), last.Scan.Files)
	g.Expect(err).ToNot(HaveOccurred())
	done := clean.Wait(rep, nil)

	g.Expect(done.Clean).ToNot(BeNil())
	g.Expect(done.Clean.CleanedCount).To(Equal(2))
	g.Expect(done.Clean.CleanedSize).To(Equal(uint64(30)))
	g.Expect(exists(fs, filepath.FromSlash("/tmp/a.tmp"))).To(BeFalse())
}

func TestRunnerRejectsSecondOperation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mem := afero.NewMemMapFs()
	seedHome(t, mem)
	gate := gateFs{
		Fs:      mem,
		dir:     filepath.FromSlash("/tmp"),
		entered: make(chan struct{}),
		release: make(chan struct{}),
		once:    &sync.Once{},
	}
	r := newRunner(t, gate)

	rep, err := r.StartScan(context.Background(), clean.Options{})
	g.Expect(err).ToNot(HaveOccurred())
	<-gate.entered

	g.Expect(r.Busy()).To(BeTrue())
	_, err = r.StartScan(context.Background(), clean.Options{})
	g.Expect(errors.Is(err, clean.ErrBusy)).To(BeTrue())
	_, err = r.StartClean(context.Background(), nil)
	g.Expect(errors.Is(err, clean.ErrBusy)).To(BeTrue())

	close(gate.release)
	last := clean.Wait(rep, nil)
	g.Expect(last.Scan).ToNot(BeNil())

	rep, err = r.StartScanPaths(context.Background(), []string{filepath.FromSlash("/var/log")}, clean.Options{})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(clean.Wait(rep, nil).Scan.Count).To(Equal(2))
}

func TestRunnerStopCancelsScan(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mem := afero.NewMemMapFs()
	seedHome(t, mem)
	gate := gateFs{
		Fs:      mem,
		dir:     filepath.FromSlash("/tmp"),
		entered: make(chan struct{}),
		release: make(chan struct{}),
		once:    &sync.Once{},
	}
	r := newRunner(t, gate)

	rep, err := r.StartScan(context.Background(), clean.Options{})
	g.Expect(err).ToNot(HaveOccurred())
	<-gate.entered
	r.Stop()
	close(gate.release)

	last := clean.Wait(rep, nil)
	g.Expect(last.Scan).ToNot(BeNil())
	g.Expect(last.Scan.Cancelled).To(BeTrue())
	g.Expect(last.Message).To(ContainSubstring("cancelled"))
}
