package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

var (
	scanCategories []string
	scanRoots      []string
	scanJSON       bool
	scanTop        int
	scanDedupe     bool
	scanTree       bool
	scanDepth      int
	scanMinSize    string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List junk files without deleting anything",
	Long: `Scan temporary files, the recycle bin, browser caches, and system logs
and report what a clean would remove.

With --root the given directories are scanned instead of the built-in
locations, using the same exclusion list and extension filter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var minSize uint64
		if scanMinSize != "" {
			n, err := core.ParseSize(scanMinSize)
			if err != nil {
				return fmt.Errorf("invalid --min-size %q: %w", scanMinSize, err)
			}
			minSize = n
		}

		res, err := runScan(cmd, scanCategories, scanRoots, dedupeFlag(cmd, scanDedupe))
		if err != nil {
			return err
		}

		if scanJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		if scanTree {
			ui.PrintTree(cmd.OutOrStdout(), ui.BuildTree(res.Files), scanDepth, minSize)
			return nil
		}
		ui.PrintScanResult(cmd.OutOrStdout(), res, scanTop)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringSliceVar(&scanCategories, "category", nil, "Only scan these categories (temp, trash, browser, logs)")
	scanCmd.Flags().StringSliceVar(&scanRoots, "root", nil, "Scan these directories instead of the built-in locations")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the result as JSON")
	scanCmd.Flags().IntVar(&scanTop, "top", 10, "Number of largest files to list (0 to hide)")
	scanCmd.Flags().BoolVar(&scanTree, "tree", false, "Show results as a directory tree")
	scanCmd.Flags().IntVar(&scanDepth, "depth", 3, "Maximum tree depth to display (0 for unlimited)")
	scanCmd.Flags().StringVar(&scanMinSize, "min-size", "", "Hide tree entries smaller than this (e.g., 10MB)")
	scanCmd.Flags().BoolVar(&scanDedupe, "dedupe", false, "Count a path found by two categories once")
}

// dedupeFlag lets an explicit --dedupe override the stored setting.
func dedupeFlag(cmd *cobra.Command, value bool) bool {
	if cmd.Flags().Changed("dedupe") {
		return value
	}
	return settings.Dedupe()
}

// runScan runs one scan to completion and returns its result.
func runScan(cmd *cobra.Command, categories, roots []string, dedupe bool) (clean.ScanResult, error) {
	if err := validateCategories(categories); err != nil {
		return clean.ScanResult{}, err
	}

	runner, err := newRunner()
	if err != nil {
		return clean.ScanResult{}, err
	}
	defer runner.Release()

	opts := scanOptions(categories, dedupe)

	var rep *clean.Reporter
	if len(roots) > 0 {
		abs := make([]string, 0, len(roots))
		for _, r := range roots {
			a, err := filepath.Abs(r)
			if err != nil {
				return clean.ScanResult{}, fmt.Errorf("resolve %s: %w", r, err)
			}
			abs = append(abs, a)
		}
		rep, err = runner.StartScanPaths(cmd.Context(), abs, opts)
	} else {
		rep, err = runner.StartScan(cmd.Context(), opts)
	}
	if err != nil {
		return clean.ScanResult{}, err
	}

	last, err := follow(cmd, "Scanning", rep, runner.Stop)
	if err != nil {
		return clean.ScanResult{}, err
	}
	if last.Scan == nil {
		return clean.ScanResult{}, fmt.Errorf("scan ended without a result")
	}
	return *last.Scan, nil
}
