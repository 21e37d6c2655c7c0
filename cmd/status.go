package cmd

import (
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
	"github.com/lakshaymaurya-felt/winsweep/internal/status"
)

// cpuSample is how long one-shot output samples CPU usage.
const cpuSample = 500 * time.Millisecond

var (
	statusRefresh int
	statusJSON    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Monitor system health",
	Long:  "Live dashboard with CPU, memory, and disk usage plus an overall health score.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if statusJSON || !isTerminal(out) {
			m, err := status.CollectMetrics(cmd.Context(), cpuSample)
			if err != nil {
				return err
			}
			if statusJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}
			status.PrintSummary(out, m)
			return nil
		}

		if !debug {
			defer logger.Raise(zerolog.WarnLevel)()
		}
		refresh := time.Duration(statusRefresh) * time.Second
		model := status.NewStatusModel(cmd.Context(), refresh, nil)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	statusCmd.Flags().IntVar(&statusRefresh, "refresh", 1, "Refresh interval in seconds")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output metrics as JSON")
}
