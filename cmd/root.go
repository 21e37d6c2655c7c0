package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
)

var (
	// Global flags
	debug      bool
	configPath string

	// settings is loaded once per invocation by the root pre-run hook.
	settings *config.Settings

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "ws",
	Short: "Find and remove junk files",
	Long: `WinSweep - find and remove junk files.

Scans temporary files, the recycle bin, browser caches, and system
logs, shows what it found, and deletes it on request. Paths on the
exclusion list are never touched.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running
// scan or clean; partial results are still reported.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is <config dir>/winsweep/settings.yaml)")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(excludeCmd)
	rootCmd.AddCommand(extCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			return err
		}
		path = p
	}

	s, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	settings = s

	level := s.LogLevel()
	if debug {
		level = "debug"
	}
	if err := logger.Init(level, s.LogFile()); err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger.Get().Debug().Str("settings", path).Str("command", cmd.CommandPath()).Msg("settings loaded")
	return nil
}
