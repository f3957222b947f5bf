package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		env, level string
		want       slog.Level
	}{
		{"dev", "", slog.LevelDebug},
		{"prod", "", slog.LevelInfo},
		{"dev", "error", slog.LevelError},
		{"prod", " WARNING ", slog.LevelWarn},
		{"prod", "loud", slog.LevelInfo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.env, tc.level), "%s/%q", tc.env, tc.level)
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "prod", "")

	log.Debug("hidden")
	log.Info("order created", "order_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order created", line["msg"])
	assert.EqualValues(t, 7, line["order_id"])
}
