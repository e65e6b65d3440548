package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		emit    func(l *Logger)
		want    string
		hidden  string
	}{
		{
			name: "quiet keeps warnings",
			emit: func(l *Logger) {
				l.Info().Msg("balance fetched")
				l.Warn().Msg("token missing")
			},
			want:   "token missing",
			hidden: "balance fetched",
		},
		{
			name:    "verbose shows debug",
			verbose: true,
			emit:    func(l *Logger) { l.Debug().Msg("GET /api/fund") },
			want:    "GET /api/fund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewClientLogger("client", &buf, tt.verbose))

			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "role=client")
			if tt.hidden != "" {
				assert.NotContains(t, out, tt.hidden)
			}
		})
	}
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Int64("fund_id", 7).Logger()

	child.Info().Msg("deposit")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.EqualValues(t, 7, entry["fund_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "fund_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("request_id", "r-1").Logger().WithContext(context.Background())

	t.Run("context", func(t *testing.T) {
		buf.Reset()
		FromContext(ctx).Info().Msg("ctx")
		assert.Equal(t, "r-1", decodeEntry(t, &buf)["request_id"])
	})

	t.Run("request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest("GET", "/api/fund", nil).WithContext(ctx)
		FromRequest(req).Info().Msg("req")
		assert.Equal(t, "r-1", decodeEntry(t, &buf)["request_id"])
	})

	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
