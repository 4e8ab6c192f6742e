package schema

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/erraggy/optgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter(t *testing.T) {
	t.Run("nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

		l.Debug("debug message", "key", "d")
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")
		l.With("source", "options.xml").Info("scoped")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG msg=\"debug message\" key=d")
		assert.Contains(t, out, "level=INFO msg=\"info message\"")
		assert.Contains(t, out, "level=WARN msg=\"warn message\"")
		assert.Contains(t, out, "level=ERROR msg=\"error message\"")
		assert.Contains(t, out, "msg=scoped source=options.xml")
	})
}

func TestParseWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := ParseWithOptions(
		WithBytes([]byte(testutil.GeneralXML)),
		WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=\"parsing schema\"")
	assert.Contains(t, out, "format=xml")
	assert.Contains(t, out, "long=verbose")
	assert.Contains(t, out, "long=output-file")
	assert.Contains(t, out, "msg=\"parsed schema\"")
}

func TestParseWithoutLoggerIsSilent(t *testing.T) {
	p := New()
	assert.IsType(t, NopLogger{}, p.log())

	_, err := p.ParseBytes([]byte(testutil.GeneralXML))
	require.NoError(t, err)
}
