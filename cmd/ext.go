package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
)

var extCmd = &cobra.Command{
	Use:   "ext",
	Short: "Manage the file extension filter",
	Long: `Manage the extension filter. When it is empty every file is a
candidate; otherwise only files whose names end with one of the listed
suffixes are. Matching is case-sensitive. Log locations always use .log.`,
}

var extListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the extension filter",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printList(cmd, settings.Extensions(), "No filter, all files are candidates.")
	},
}

var extAddCmd = &cobra.Command{
	Use:   "add EXT...",
	Short: "Add extensions to the filter",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		changed := false
		for _, arg := range args {
			ext := config.NormalizeExtension(arg)
			if ext == "" {
				continue
			}
			if settings.AddExtension(ext) {
				changed = true
				fmt.Fprintf(out, "  + %s\n", ext)
			} else {
				fmt.Fprintf(out, "  = %s (already listed)\n", ext)
			}
		}
		if !changed {
			return nil
		}
		return settings.Save()
	},
}

var extRemoveCmd = &cobra.Command{
	Use:     "remove EXT...",
	Aliases: []string{"rm"},
	Short:   "Remove extensions from the filter",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		changed := false
		for _, arg := range args {
			ext := config.NormalizeExtension(arg)
			if settings.RemoveExtension(ext) {
				changed = true
				fmt.Fprintf(out, "  - %s\n", ext)
			} else {
				fmt.Fprintf(out, "  ? %s (not listed)\n", ext)
			}
		}
		if !changed {
			return nil
		}
		return settings.Save()
	},
}

func init() {
	extCmd.AddCommand(extListCmd)
	extCmd.AddCommand(extAddCmd)
	extCmd.AddCommand(extRemoveCmd)
}
