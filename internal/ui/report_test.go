package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
)

func TestPrintScanResultGroupsByCategory(t *testing.T) {
	g := NewWithT(t)

	res := clean.Aggregate(false,
		[]clean.FileRecord{{Path: "/tmp/a", Name: "a", Size: 2048, Category: "temp"}},
		[]clean.FileRecord{
			{Path: "/var/log/x.log", Name: "x.log", Size: 10, Category: "logs"},
			{Path: "/var/log/y.log", Name: "y.log", Size: 20, Category: "logs"},
		},
	)

	var buf bytes.Buffer
	PrintScanResult(&buf, res, 2)
	out := buf.String()

	g.Expect(out).To(ContainSubstring("Temporary files"))
	g.Expect(out).To(ContainSubstring("Log files"))
	g.Expect(out).To(ContainSubstring("Total"))
	g.Expect(out).To(ContainSubstring("3 files"))
	g.Expect(out).To(ContainSubstring("Largest 2 files:"))
	g.Expect(strings.Index(out, "/tmp/a")).To(BeNumerically("<", strings.Index(out, "/var/log/y.log")))
	g.Expect(out).NotTo(ContainSubstring("/var/log/x.log"))
}

func TestPrintScanResultEmpty(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	PrintScanResult(&buf, clean.ScanResult{Warnings: []string{"cannot read /root"}}, 0)

	g.Expect(buf.String()).To(ContainSubstring("Nothing to clean."))
	g.Expect(buf.String()).To(ContainSubstring("! cannot read /root"))
}

func TestPrintScanResultCustomRoots(t *testing.T) {
	g := NewWithT(t)

	res := clean.Aggregate(false, []clean.FileRecord{{Path: "/data/a", Name: "a", Size: 1}})

	var buf bytes.Buffer
	PrintScanResult(&buf, res, 0)
	g.Expect(buf.String()).To(ContainSubstring("Custom paths"))
	g.Expect(buf.String()).NotTo(ContainSubstring("Largest"))
}

func TestPrintCleanResult(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	PrintCleanResult(&buf, clean.CleanResult{CleanedCount: 1, CleanedSize: 1024, FailedCount: 2, Cancelled: true})
	out := buf.String()

	g.Expect(out).To(ContainSubstring("Clean cancelled."))
	g.Expect(out).To(ContainSubstring("Removed 1 file, freed 1.0 KiB"))
	g.Expect(out).To(ContainSubstring("Failed to remove 2 files"))
}

func TestPrintWarningsTruncates(t *testing.T) {
	g := NewWithT(t)

	var warnings []string
	for i := 0; i < maxPrintedWarnings+5; i++ {
		warnings = append(warnings, fmt.Sprintf("w%d", i))
	}

	var buf bytes.Buffer
	printWarnings(&buf, warnings)

	g.Expect(buf.String()).To(ContainSubstring("15 warnings:"))
	g.Expect(buf.String()).To(ContainSubstring("... and 5 more"))
	g.Expect(buf.String()).NotTo(ContainSubstring("w10"))
}

func TestPlainProgress(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	onEvent := PlainProgress(&buf)
	onEvent(clean.Event{Percent: 5, Message: "Scanning Temporary files…"})
	onEvent(clean.Event{Percent: 7})

	g.Expect(buf.String()).To(Equal("  [  5%] Scanning Temporary files…\n"))
}
