package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("material_id", "3").Msg("updated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "updated", entry["message"])
	assert.Equal(t, "3", entry["material_id"])
	assert.Contains(t, entry, "time")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context is part of the contract
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithRequestID(ctx, "req-123")

	assert.Equal(t, "req-123", RequestID(ctx))

	Ctx(ctx).Info().Msg("tagged")
	assert.Contains(t, buf.String(), "req-123")
}
