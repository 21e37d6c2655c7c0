package core_test

import (
	"path/filepath"
	"testing"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	. "github.com/onsi/gomega"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{60, "60 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := core.FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	g := NewWithT(t)

	n, err := core.ParseSize("2KiB")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(n).To(Equal(uint64(2048)))

	_, err = core.ParseSize("lots")
	g.Expect(err).To(HaveOccurred())
}

func TestPlural(t *testing.T) {
	g := NewWithT(t)
	g.Expect(core.Plural(1, "file")).To(Equal("file"))
	g.Expect(core.Plural(0, "file")).To(Equal("files"))
	g.Expect(core.Plural(3, "file")).To(Equal("files"))
}

func TestIsProtected(t *testing.T) {
	g := NewWithT(t)

	root := t.TempDir()
	users := filepath.Join(root, "Users")
	protected := []string{users, ""}

	g.Expect(core.IsProtected(users, protected)).To(BeTrue())
	g.Expect(core.IsProtected(users+string(filepath.Separator), protected)).To(BeTrue())
	g.Expect(core.IsProtected(filepath.Join(users, "me", "Temp", "a.tmp"), protected)).To(BeFalse())
	g.Expect(core.IsProtected(root+"-other", protected)).To(BeFalse())
	g.Expect(core.IsProtected("", protected)).To(BeTrue())
}
