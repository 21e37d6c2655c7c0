package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

var (
	dryRun          bool
	assumeYes       bool
	cleanDedupe     bool
	cleanCategories []string
	cleanRoots      []string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long: `Scan for junk files, show what was found, and delete it after
confirmation. Files that cannot be removed are counted and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		res, err := runScan(cmd, cleanCategories, cleanRoots, dedupeFlag(cmd, cleanDedupe))
		if err != nil {
			return err
		}
		ui.PrintScanResult(out, res, 0)

		if res.Cancelled {
			fmt.Fprintln(out, "  Nothing deleted.")
			return nil
		}
		if res.Count == 0 {
			return nil
		}
		if dryRun {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  Dry run, nothing deleted.")
			return nil
		}

		if !assumeYes {
			question := fmt.Sprintf("Delete %d %s (%s)?", res.Count, core.Plural(res.Count, "file"), core.FormatSize(res.TotalSize))
			ok, err := newPrompter(cmd.InOrStdin(), out).Confirm(question, false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "  Aborted.")
				return nil
			}
		}

		runner, err := newRunner()
		if err != nil {
			return err
		}
		defer runner.Release()

		rep, err := runner.StartClean(cmd.Context(), res.Files)
		if err != nil {
			return err
		}
		last, err := follow(cmd, "Cleaning", rep, runner.Stop)
		if err != nil {
			return err
		}
		if last.Clean == nil {
			return fmt.Errorf("clean ended without a result")
		}

		fmt.Fprintln(out)
		ui.PrintCleanResult(out, *last.Clean)
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking for confirmation")
	cleanCmd.Flags().BoolVar(&cleanDedupe, "dedupe", false, "Count a path found by two categories once")
	cleanCmd.Flags().StringSliceVar(&cleanCategories, "category", nil, "Only clean these categories (temp, trash, browser, logs)")
	cleanCmd.Flags().StringSliceVar(&cleanRoots, "root", nil, "Clean these directories instead of the built-in locations")
}
