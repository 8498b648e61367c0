package variables

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x", "k", "v")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewSlogAdapter(base).With("component", "resolver")

	l.Debug("debug msg", "n", 1)
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR", "component=resolver", "n=1"} {
		assert.Contains(t, out, want)
	}

	assert.NotNil(t, NewSlogAdapter(nil))
}
