package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	. "github.com/onsi/gomega"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	g := NewWithT(t)

	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope", "settings.yaml"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(s.Exclusions()).To(BeEmpty())
	g.Expect(s.Extensions()).To(BeEmpty())
	g.Expect(s.MaxDepth()).To(Equal(config.DefaultMaxDepth))
	g.Expect(s.Dedupe()).To(BeFalse())
	g.Expect(s.LogLevel()).To(Equal("info"))
}

func TestGetReturnsDefaultForUnsetKey(t *testing.T) {
	g := NewWithT(t)

	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(s.Get("ui.theme", "dark")).To(Equal("dark"))
	s.Set("ui.theme", "light")
	g.Expect(s.Get("ui.theme", "dark")).To(Equal("light"))
}

func TestExclusionsRoundTripThroughFile(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "cfg", "settings.yaml")
	s, err := config.LoadSettings(path)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(s.AddExclusion("/tmp/foo")).To(BeTrue())
	g.Expect(s.AddExclusion("/tmp/bar")).To(BeTrue())
	g.Expect(s.AddExclusion("/tmp/foo")).To(BeFalse())
	g.Expect(s.AddExtension("tmp")).To(BeTrue())
	g.Expect(s.AddExtension(".log")).To(BeTrue())
	g.Expect(s.AddExtension(".tmp")).To(BeFalse())
	g.Expect(s.Save()).To(Succeed())

	_, err = os.Stat(path)
	g.Expect(err).ToNot(HaveOccurred())

	reloaded, err := config.LoadSettings(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(reloaded.Exclusions()).To(Equal([]string{"/tmp/foo", "/tmp/bar"}))
	g.Expect(reloaded.Extensions()).To(Equal([]string{".tmp", ".log"}))

	g.Expect(reloaded.RemoveExclusion("/tmp/foo")).To(BeTrue())
	g.Expect(reloaded.RemoveExclusion("/tmp/foo")).To(BeFalse())
	g.Expect(reloaded.RemoveExtension("log")).To(BeTrue())
	g.Expect(reloaded.Exclusions()).To(Equal([]string{"/tmp/bar"}))
	g.Expect(reloaded.Extensions()).To(Equal([]string{".tmp"}))
}

func TestLoadSettingsRejectsCorruptFile(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	g.Expect(os.WriteFile(path, []byte("clean: [unterminated"), 0o644)).To(Succeed())

	_, err := config.LoadSettings(path)
	g.Expect(err).To(HaveOccurred())
}

func TestNegativeMaxDepthMeansUnlimited(t *testing.T) {
	g := NewWithT(t)

	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	g.Expect(err).ToNot(HaveOccurred())
	s.Set(config.KeyMaxDepth, -3)
	g.Expect(s.MaxDepth()).To(Equal(0))
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"tmp":    ".tmp",
		".tmp":   ".tmp",
		" log ":  ".log",
		"":       "",
		"tar.gz": ".tar.gz",
	}
	for in, want := range tests {
		if got := config.NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}
