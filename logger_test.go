package somgo

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func findRecord(records []map[string]any, msg string) map[string]any {
	for _, rec := range records {
		if rec["msg"] == msg {
			return rec
		}
	}
	return nil
}

func TestLogger(t *testing.T) {
	t.Run("TrainingLifecycle", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		m := New(2, 2, 1, 1, 10, 0.5, WithLogger(logger), zeros())
		m.TrainingStep([]float32{1})
		require.NoError(t, m.Close())

		records := decodeRecords(t, &buf)

		created := findRecord(records, "map created")
		require.NotNil(t, created)
		assert.Equal(t, m.ID().String(), created["map_id"])
		assert.Equal(t, "height", created["stride"])

		grid, ok := created["grid"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), grid["width"])
		assert.Equal(t, float64(1), grid["vector_len"])

		step := findRecord(records, "training step")
		require.NotNil(t, step)
		assert.Equal(t, float64(0), step["step"])
		assert.Equal(t, float64(1), step["t_exp"])
		assert.Equal(t, float64(1), step["dist_sq"])

		assert.NotNil(t, findRecord(records, "map reset"))
		assert.NotNil(t, findRecord(records, "map closed"))
	})

	t.Run("RectangularHeightStrideWarns", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

		New(3, 2, 1, 1, 10, 0.5, WithLogger(logger))

		records := decodeRecords(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "WARN", records[0]["level"])
	})

	t.Run("FaultLogged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, nil))

		m := New(2, 2, 1, 1, 10, 0.5, WithLogger(logger), WithFaultHandler(func(error) {}))
		m.Prototype(5, 5)

		rec := findRecord(decodeRecords(t, &buf), "precondition violated")
		require.NotNil(t, rec)
		assert.Contains(t, rec["error"], "out of range")
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(t.Context(), slog.LevelDebug))
		assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(t.Context(), slog.LevelInfo))
	})
}
