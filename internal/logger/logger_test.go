package logger_test

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/winsweep/internal/logger"
	. "github.com/onsi/gomega"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := logger.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetCapturesOutput(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	logger.Get().Info().Str("path", "/tmp/x").Msg("hello")

	g.Expect(buf.String()).To(ContainSubstring(`"path":"/tmp/x"`))
	g.Expect(buf.String()).To(ContainSubstring("hello"))
}

func TestInitWithFile(t *testing.T) {
	g := NewWithT(t)

	file := filepath.Join(t.TempDir(), "ws.log")
	g.Expect(logger.Init("debug", file)).To(Succeed())
	g.Expect(logger.Get().GetLevel()).To(Equal(zerolog.DebugLevel))

	g.Expect(logger.Init("info", filepath.Join(t.TempDir(), "missing", "ws.log"))).ToNot(Succeed())
}

func TestRaiseRestoresLevel(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf).Level(zerolog.DebugLevel))

	restore := logger.Raise(zerolog.WarnLevel)
	logger.Get().Info().Msg("hidden")
	g.Expect(buf.String()).To(BeEmpty())

	restore()
	logger.Get().Info().Msg("shown")
	g.Expect(buf.String()).To(ContainSubstring("shown"))

	logger.Set(zerolog.New(&buf).Level(zerolog.ErrorLevel))
	logger.Raise(zerolog.WarnLevel)()
	g.Expect(logger.Get().GetLevel()).To(Equal(zerolog.ErrorLevel))
}

func TestRaiseWhileLogging(t *testing.T) {
	g := NewWithT(t)

	var buf syncBuffer
	logger.Set(zerolog.New(&buf).Level(zerolog.DebugLevel))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			logger.Get().Debug().Int("i", i).Msg("walking")
		}
	}()

	for i := 0; i < 50; i++ {
		logger.Raise(zerolog.WarnLevel)()
	}
	<-done

	g.Expect(logger.Get().GetLevel()).To(Equal(zerolog.DebugLevel))
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
