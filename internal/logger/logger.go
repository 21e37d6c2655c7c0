// Package logger wraps the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// current is read by worker goroutines while the CLI swaps it, so every
// access goes through the atomic pointer.
var current atomic.Pointer[zerolog.Logger]

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Init configures the global logger. Console output goes to stderr so that
// stdout stays clean for reports and --json output. When file is non-empty,
// JSON lines are appended to it as well.
func Init(level string, file string) error {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		output = zerolog.MultiLevelWriter(output, f)
	}

	l := zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	current.Store(&l)
	log.Logger = l
	return nil
}

// Get returns the global logger. Before Init it returns a logger that
// discards everything, which keeps library code and tests quiet.
func Get() *zerolog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	l := zerolog.New(io.Discard)
	current.CompareAndSwap(nil, &l)
	return current.Load()
}

// Set replaces the global logger. Tests use it to capture output.
func Set(l zerolog.Logger) {
	current.Store(&l)
}

// Raise lifts the global level to at least min until the returned func is
// called. Full-screen views use it so console lines do not tear the frame.
func Raise(min zerolog.Level) (restore func()) {
	prev := *Get()
	if prev.GetLevel() >= min {
		return func() {}
	}
	Set(prev.Level(min))
	return func() { Set(prev) }
}
