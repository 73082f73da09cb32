// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func newBufferedLogger(t *testing.T, role string, opts Options) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts.Output = &buf
	l, err := NewLogger(role, opts)
	require.NoError(t, err)
	return l, &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ─────────────────────────────────────────────────────────────────

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	l, buf := newBufferedLogger(t, "server", Options{})

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	l, buf := newBufferedLogger(t, "caller", Options{})
	l.Info().Msg("caller check")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, decodeEntry(t, buf), "func")
}

func TestNewLogger_DefaultLevelIsInfo(t *testing.T) {
	l, buf := newBufferedLogger(t, "level", Options{})

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Msg("shown")
	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_DebugLevel(t *testing.T) {
	l, buf := newBufferedLogger(t, "level", Options{Level: "debug"})

	l.Debug().Msg("visible")
	assert.Equal(t, "debug", decodeEntry(t, buf)["level"])
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	l, err := NewLogger("bad", Options{Level: "loud"})
	assert.Nil(t, l)
	assert.Error(t, err)
}

func TestNewLogger_Pretty(t *testing.T) {
	l, buf := newBufferedLogger(t, "cli", Options{Pretty: true})

	l.Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.False(t, json.Valid(buf.Bytes()))
}

// ── Nop / child ───────────────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	parent, buf := newBufferedLogger(t, "inherited-role", Options{})

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, buf)["role"])
}

// ── context helpers ───────────────────────────────────────────────────────────

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
