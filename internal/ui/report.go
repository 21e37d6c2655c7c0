package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
)

// ruleWidth is the width of the ASCII separators in plain reports.
const ruleWidth = 58

// PrintScanResult prints a plain-text summary of a scan: per-category
// totals, then the largest files when top > 0. ASCII only, so it renders
// on legacy Windows consoles and in redirected output.
func PrintScanResult(w io.Writer, res clean.ScanResult, top int) {
	if res.Cancelled {
		fmt.Fprintln(w, "  Scan cancelled, partial results:")
	}
	if res.Count == 0 {
		fmt.Fprintln(w, "  Nothing to clean.")
		printWarnings(w, res.Warnings)
		return
	}

	fmt.Fprintln(w, "  "+strings.Repeat("-", ruleWidth))
	for _, t := range res.ByCategory() {
		label := config.CategoryLabel(t.Category)
		if t.Category == "" {
			label = "Custom paths"
		}
		fmt.Fprintf(w, "  %-24s %8d %-5s %12s\n",
			label, t.Count, core.Plural(t.Count, "file"), core.FormatSize(t.Size))
	}
	fmt.Fprintln(w, "  "+strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "  %-24s %8d %-5s %12s\n",
		"Total", res.Count, core.Plural(res.Count, "file"), core.FormatSize(res.TotalSize))

	if top > 0 {
		files := make([]clean.FileRecord, len(res.Files))
		copy(files, res.Files)
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].Size > files[j].Size
		})
		if len(files) > top {
			files = files[:top]
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Largest %d %s:\n", len(files), core.Plural(len(files), "file"))
		for _, f := range files {
			fmt.Fprintf(w, "  %12s  %s\n", core.FormatSize(f.Size), f.Path)
		}
	}

	printWarnings(w, res.Warnings)
}

// PrintCleanResult prints a plain-text summary of a clean.
func PrintCleanResult(w io.Writer, res clean.CleanResult) {
	if res.Cancelled {
		fmt.Fprintln(w, "  Clean cancelled.")
	}
	fmt.Fprintf(w, "  Removed %d %s, freed %s\n",
		res.CleanedCount, core.Plural(res.CleanedCount, "file"), core.FormatSize(res.CleanedSize))
	if res.FailedCount > 0 {
		fmt.Fprintf(w, "  Failed to remove %d %s\n", res.FailedCount, core.Plural(res.FailedCount, "file"))
	}
	printWarnings(w, res.Warnings)
}

// maxPrintedWarnings limits the warnings echoed to the terminal; the log
// keeps the rest.
const maxPrintedWarnings = 10

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d %s:\n", len(warnings), core.Plural(len(warnings), "warning"))
	for i, msg := range warnings {
		if i == maxPrintedWarnings {
			fmt.Fprintf(w, "  ... and %d more\n", len(warnings)-maxPrintedWarnings)
			break
		}
		fmt.Fprintf(w, "  ! %s\n", msg)
	}
}

// PlainProgress returns an event handler that prints one line per status
// message. It is used when stdout is not a terminal.
func PlainProgress(w io.Writer) func(clean.Event) {
	return func(ev clean.Event) {
		if ev.Message == "" {
			return
		}
		fmt.Fprintf(w, "  [%3d%%] %s\n", ev.Percent, ev.Message)
	}
}
