package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	obs := Init(Config{Environment: "production", Version: "test", LogLevel: "info"}, &buf)

	obs.Provider.Logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "cirqit-scoreboard", line["service"])
	assert.Equal(t, "production", line["environment"])
}

func TestInit_DebugFiltered(t *testing.T) {
	var buf bytes.Buffer
	obs := Init(Config{Environment: "production", LogLevel: "warn"}, &buf)

	obs.Provider.Logger.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestOperationMetrics(t *testing.T) {
	disabled := Init(Config{}, &bytes.Buffer{})
	assert.Equal(t, metrics.NewNoop(), disabled.OperationMetrics("event"))

	enabled := Init(Config{MetricsEnabled: true}, &bytes.Buffer{})
	assert.NotEqual(t, metrics.NewNoop(), enabled.OperationMetrics("event"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
