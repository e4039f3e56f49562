// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

func newTestMailer(t *testing.T, serverURL string) Mailer {
	t.Helper()
	m, err := NewHTTPMailer(config.Mail{
		APIURL:         serverURL,
		APIKey:         "mail-key",
		From:           "noreply@invoices.test",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return m
}

var testMessage = models.MailMessage{
	To:      "alex@example.com",
	Subject: "Confirm your email",
	Text:    "http://localhost:5000/user/confirm-email?token=abc",
}

func TestHTTPMailer_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))

		var body sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "noreply@invoices.test", body.From)
		assert.Equal(t, []string{"alex@example.com"}, body.To)
		assert.Equal(t, testMessage.Subject, body.Subject)
		assert.Contains(t, body.Text, "token=abc")

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestMailer(t, srv.URL).Send(context.Background(), testMessage))
}

func TestHTTPMailer_Send_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestMailer(t, srv.URL).Send(context.Background(), testMessage)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPMailer_Send_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestMailer(t, srv.URL).Send(context.Background(), testMessage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestHTTPMailer_Send_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestMailer(t, url).Send(context.Background(), testMessage)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPMailer_Send_EmptyRecipient(t *testing.T) {
	m := newTestMailer(t, "http://127.0.0.1:1")
	assert.ErrorIs(t, m.Send(context.Background(), models.MailMessage{}), ErrEmptyRecipient)
}

func TestNewMailer_FallsBackToLogMailer(t *testing.T) {
	m, err := NewMailer(config.Mail{}, logger.Nop())
	require.NoError(t, err)

	_, ok := m.(*logMailer)
	require.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), testMessage))
	assert.ErrorIs(t, m.Send(context.Background(), models.MailMessage{}), ErrEmptyRecipient)
}

func TestNewMailer_HTTP(t *testing.T) {
	m, err := NewMailer(config.Mail{APIURL: "mail.example.com"}, logger.Nop())
	require.NoError(t, err)

	hm, ok := m.(*httpMailer)
	require.True(t, ok)
	assert.Equal(t, "https://mail.example.com", hm.client.BaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://api.mail.test/", want: "https://api.mail.test"},
		{raw: "api.mail.test", want: "https://api.mail.test"},
		{raw: "http://127.0.0.1:8025/v1", want: "http://127.0.0.1:8025/v1"},
		{raw: "   ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
