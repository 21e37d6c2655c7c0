package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// isTerminal reports whether v is an interactive console. Only *os.File
// values can be; buffers and pipes wrapped in other types never are.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRunner builds a runner over the real filesystem and the catalogue for
// this machine.
func newRunner() (*clean.Runner, error) {
	env := config.CurrentEnv()
	return clean.NewRunner(afero.NewOsFs(), config.GetCleanTargets(env), config.GetNeverDeletePaths(env))
}

// scanOptions snapshots the persisted settings for one operation.
func scanOptions(categories []string, dedupe bool) clean.Options {
	return clean.Options{
		Exclude:    settings.Exclusions(),
		Extensions: settings.Extensions(),
		MaxDepth:   settings.MaxDepth(),
		Dedupe:     dedupe,
		Categories: categories,
	}
}

// follow consumes a reporter until the operation ends and returns its
// terminal event. On a terminal it shows the progress view; otherwise it
// prints one line per status message to stderr.
func follow(cmd *cobra.Command, title string, rep *clean.Reporter, stop func()) (clean.Event, error) {
	if !isTerminal(cmd.OutOrStdout()) {
		return clean.Wait(rep, ui.PlainProgress(cmd.ErrOrStderr())), nil
	}

	if !debug {
		defer logger.Raise(zerolog.WarnLevel)()
	}

	final, err := tea.NewProgram(ui.NewProgressModel(title, rep.Events(), stop)).Run()
	if err != nil {
		// The view died; stop the worker and drain what is left so the
		// reporter can shut down.
		stop()
		last := clean.Wait(rep, nil)
		return last, fmt.Errorf("progress view: %w", err)
	}
	return final.(ui.ProgressModel).Final(), nil
}

// validateCategories rejects unknown --category values.
func validateCategories(categories []string) error {
	for _, c := range categories {
		if !config.IsCategory(c) {
			return fmt.Errorf("unknown category %q (valid: %v)", c, config.Categories)
		}
	}
	return nil
}
