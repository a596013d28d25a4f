package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects a logger's output into a buffer and returns the first
// entry written as a decoded map.
func capture(t *testing.T, l *Logger, emit func(l *Logger)) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	emit(l)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	l := NewLogger("engine")
	require.NotNil(t, l)

	entry := capture(t, l, func(l *Logger) {
		l.Info().Msg("booted")
	})

	assert.Equal(t, "engine", entry["role"])
	assert.Equal(t, "booted", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_GlobalSetup(t *testing.T) {
	NewLogger("setup")

	// construction configures zerolog process-wide: everything down to
	// debug is emitted, and the caller field carries the function name
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("vault")
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	entry := capture(t, child, func(l *Logger) {
		l.Info().Msg("from child")
	})
	assert.Equal(t, "vault", entry["role"], "child keeps the parent's fields")
}

func TestFromContext(t *testing.T) {
	t.Run("bare context still yields a logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("origin", "ctx").Logger()

		l := FromContext(zl.WithContext(context.Background()))
		l.Info().Msg("hi")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "ctx", entry["origin"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("origin", "req").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/items/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("hi")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req", entry["origin"])
}
