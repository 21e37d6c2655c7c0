package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage paths that are never scanned or deleted",
	Long: `Manage the exclusion list. An excluded directory is skipped together
with everything below it. Paths are matched exactly as stored.`,
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show excluded paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printList(cmd, settings.Exclusions(), "No excluded paths.")
	},
}

var excludeAddCmd = &cobra.Command{
	Use:   "add PATH...",
	Short: "Exclude paths from scans",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		changed := false
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", arg, err)
			}
			if settings.AddExclusion(abs) {
				changed = true
				fmt.Fprintf(out, "  + %s\n", abs)
			} else {
				fmt.Fprintf(out, "  = %s (already excluded)\n", abs)
			}
		}
		if !changed {
			return nil
		}
		return settings.Save()
	},
}

var excludeRemoveCmd = &cobra.Command{
	Use:     "remove PATH...",
	Aliases: []string{"rm"},
	Short:   "Stop excluding paths",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		changed := false
		for _, arg := range args {
			// Try the argument as typed first so entries stored by hand
			// can still be removed.
			path := arg
			if !settings.RemoveExclusion(path) {
				abs, err := filepath.Abs(arg)
				if err != nil || !settings.RemoveExclusion(abs) {
					fmt.Fprintf(out, "  ? %s (not excluded)\n", arg)
					continue
				}
				path = abs
			}
			changed = true
			fmt.Fprintf(out, "  - %s\n", path)
		}
		if !changed {
			return nil
		}
		return settings.Save()
	},
}

func init() {
	excludeCmd.AddCommand(excludeListCmd)
	excludeCmd.AddCommand(excludeAddCmd)
	excludeCmd.AddCommand(excludeRemoveCmd)
}

func printList(cmd *cobra.Command, items []string, empty string) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "  "+empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(out, "  %s\n", item)
	}
}
