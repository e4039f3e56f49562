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

// lastEntry decodes the single JSON line written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "invoice-tracker", zerolog.DebugLevel)

	l.Info().Msg("invoice created")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "invoice-tracker", entry["role"])
	assert.Equal(t, "invoice created", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func", "caller is recorded under the func key")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLoggerForMode_Levels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		mode string
		want zerolog.Level
	}{
		{mode: ModeDevelopment, want: zerolog.DebugLevel},
		{mode: ModeProduction, want: zerolog.InfoLevel},
		{mode: "staging", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			l := NewLoggerForMode("invoice-tracker", tt.mode)
			require.NotNil(t, l)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNewLoggerForMode_ProductionHidesDebug(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := NewLoggerForMode("invoice-tracker", ModeProduction)
	l.Logger = l.Output(&buf)

	l.Debug().Msg("query details")
	assert.Empty(t, buf.String())

	l.Info().Msg("server started")
	assert.Equal(t, "server started", lastEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "invoice-tracker", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", "user-1")
	})

	child.Info().Msg("from child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "invoice-tracker", entry["role"], "child inherits parent fields")
	assert.Equal(t, "user-1", entry["user_id"])

	buf.Reset()
	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, &buf), "user_id", "parent is not mutated by the child")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "invoice-tracker", zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	t.Run("FromContext", func(t *testing.T) {
		buf.Reset()
		FromContext(ctx).Info().Msg("ctx")
		assert.Equal(t, "invoice-tracker", lastEntry(t, &buf)["role"])
	})

	t.Run("FromRequest", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil).WithContext(ctx)
		FromRequest(req).Info().Msg("req")
		assert.Equal(t, "invoice-tracker", lastEntry(t, &buf)["role"])
	})
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("no logger attached") })

	r := FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, r)
}
