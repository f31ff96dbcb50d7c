package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cockroachdb/errors"
)

func TestToLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ToLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ToLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, ToLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ToLogLevel("error"))
	assert.Panics(t, func() { ToLogLevel("verbose") })
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Error("solve failed", ErrAttr(errors.New("singular matrix")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "solve failed", record["msg"])
	assert.Contains(t, record, StacktraceAttrKey)
	stack, _ := record[StacktraceAttrKey].(string)
	assert.NotEmpty(t, stack)
}

func TestErrFmtHandlerPlainRecord(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Info("estimator fitted", "krige.variable", "zinc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "zinc", record["krige.variable"])
	assert.NotContains(t, record, StacktraceAttrKey)
}

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(base)

	logger.With("component", "solver").Info("surface estimated", "locations", 16)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "solver", record["component"])
	assert.Equal(t, float64(16), record["locations"])
	assert.True(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestTestLoggerCapture(t *testing.T) {
	logger, buf := NewTestLogger(LevelDebug)
	logger.Debug("resolved variant", "variant", "ordinary")
	logger.Info("estimator fitted", "samples", 5)

	assert.True(t, logger.Contains("resolved variant"))
	assert.True(t, logger.Contains("variant=ordinary"))
	assert.Contains(t, buf.String(), "INFO estimator fitted samples=5")
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)
	logger.Debug("noise")
	logger.Info("noise")
	logger.Warn("conditioning")

	assert.False(t, logger.Contains("noise"))
	assert.True(t, logger.Contains("conditioning"))
	assert.False(t, logger.Enabled(context.Background(), LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), LevelError))
}

func TestTestLoggerWithSharesBuffer(t *testing.T) {
	logger, buf := NewTestLogger(LevelInfo)
	derived := logger.With("krige.variable", "zinc")
	derived.Info("estimator fitted")
	logger.Info("solve complete")

	out := buf.String()
	assert.Contains(t, out, "krige.variable=zinc")
	assert.Contains(t, out, "solve complete")
	assert.True(t, logger.Contains("estimator fitted"))
}

func TestTestLoggerConcurrentUse(t *testing.T) {
	logger, buf := NewTestLogger(LevelInfo)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			derived := logger.With("worker", "w")
			for j := 0; j < 25; j++ {
				derived.Info("location estimated")
			}
		}()
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 200, lines)
}
