package hypernum

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypernum/kind"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.WithOp("vec.New").WithKind(kind.Float32).LogAllocation(4, 16, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "allocation completed", rec["msg"])
	assert.Equal(t, "vec.New", rec["op"])
	assert.Equal(t, "float32", rec["kind"])
	assert.InDelta(t, 4, rec["elements"], 0)
	assert.InDelta(t, 16, rec["bytes"], 0)
}

func TestLoggerAllocationFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	logger.LogAllocation(1<<20, 8<<20, errors.New("over budget"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "over budget", rec["error"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotPanics(t, func() {
		logger.LogConversion(Conversion{Op: "x", From: kind.Int, To: kind.Int8, Change: kind.Narrowing})
	})
	assert.NotNil(t, DefaultLogger())
}
