package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for value, want := range cases {
		t.Setenv("LOG_LEVEL", value)
		require.Equal(t, want, logLevel(), "LOG_LEVEL=%q", value)
	}
}

func TestNewSpanExporter_DefaultsToStdout(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exporter, err := newSpanExporter(context.Background(), slog.Default())
	require.NoError(t, err)
	require.NotNil(t, exporter)
	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestInstruments_NilFallbacks(t *testing.T) {
	var instruments *Instruments
	require.NotNil(t, instruments.Tracer("sales"))
	require.NotNil(t, instruments.Meter("sales"))
}
