// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/service"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/validators"
	"github.com/MKhiriev/go-invoice-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
			assert.Equal(t, "alex", req.Username)
			assert.Equal(t, "alex@example.com", req.Email)
			return models.Registration{
				User:              models.User{UserID: "user-1", Username: "alex", Email: "alex@example.com", PasswordHash: "secret-hash"},
				ConfirmationToken: "confirm-token",
			}, nil
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/register",
		jsonBody(t, models.RegisterRequest{Username: "alex", Email: "alex@example.com", Password: "long-enough"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgRegistered, resp.Message)
	assert.Equal(t, "user-1", resp.User.UserID)
	assert.Equal(t, "confirm-token", resp.Token)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestRegister_ProductionHidesToken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
			return models.Registration{ConfirmationToken: "confirm-token"}, nil
		},
	}
	h := newTestHandler(auth, nil)
	h.production = true

	rec := serve(h, http.MethodPost, "/user/register",
		jsonBody(t, models.RegisterRequest{Username: "alex", Email: "alex@example.com", Password: "long-enough"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "confirm-token")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantKind   models.ErrorKind
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "unknown field",
			body:       `{"username":"a","email":"a@b.c","password":"long-enough","admin":true}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "validation failure",
			body:       `{"username":"","email":"a@b.c","password":"long-enough"}`,
			serviceErr: wrapInvalid(validators.ErrEmptyUsername),
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "duplicate email",
			body:       `{"username":"a","email":"a@b.c","password":"long-enough"}`,
			serviceErr: store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantKind:   models.KindConflict,
		},
		{
			name:       "unexpected failure",
			body:       `{"username":"a","email":"a@b.c","password":"long-enough"}`,
			serviceErr: store.ErrExecutingStatement,
			wantStatus: http.StatusInternalServerError,
			wantKind:   models.KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
					return models.Registration{}, tt.serviceErr
				},
			}

			rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/register", strings.NewReader(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
		})
	}
}

// ─────────────────────────────────────────────
// confirmEmail
// ─────────────────────────────────────────────

func TestConfirmEmail_Success(t *testing.T) {
	auth := &mockAuthService{
		confirmEmailFn: func(ctx context.Context, token string) error {
			assert.Equal(t, "tok-1", token)
			return nil
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodGet, "/user/confirm-email?token=tok-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Email confirmed. You can now log in."}`, rec.Body.String())
}

func TestConfirmEmail_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		confirmEmailFn: func(ctx context.Context, token string) error {
			return store.ErrInvalidConfirmationToken
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodGet, "/user/confirm-email?token=used", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token.", decodeError(t, rec).Message)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func loggedInService(expiresAt time.Time) *mockAuthService {
	return &mockAuthService{
		loginFn: func(ctx context.Context, creds models.Credentials) (models.User, models.Session, error) {
			return models.User{UserID: "user-1", Email: creds.Identifier()},
				models.Session{ID: "sid-1", SignedToken: "signed.jwt.token", ExpiresAt: expiresAt}, nil
		},
	}
}

func TestLogin_SetsCookieAndReturnsToken(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	rec := serve(newTestHandler(loggedInService(expiresAt), nil), http.MethodPost, "/user/login",
		strings.NewReader(`{"email":"alex@example.com","password":"long-enough"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "user-1", resp.User.UserID)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))

	cookie := sessionCookieFrom(t, rec.Result())
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Greater(t, cookie.MaxAge, 0)
}

func TestLogin_ProductionCookieFlags(t *testing.T) {
	h := newTestHandler(loggedInService(time.Now().Add(time.Hour)), nil)
	h.production = true

	rec := serve(h, http.MethodPost, "/user/login",
		strings.NewReader(`{"username":"alex","password":"long-enough"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieFrom(t, rec.Result())
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"email not confirmed", service.ErrEmailNotConfirmed, http.StatusForbidden, "Please confirm your email before logging in."},
		{"database unavailable", store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(ctx context.Context, creds models.Credentials) (models.User, models.Session, error) {
					return models.User{}, models.Session{}, tt.serviceErr
				},
			}

			rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/login",
				strings.NewReader(`{"email":"alex@example.com","password":"whatever"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	h := newTestHandler(loggedInService(time.Now().Add(time.Hour)), nil)
	h.authLimiter = newRateLimiter(0.001, 1)
	router := h.Init()

	body := `{"email":"alex@example.com","password":"long-enough"}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := serveWith(router, http.MethodPost, "/user/login", strings.NewReader(body))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_RevokesCookieSession(t *testing.T) {
	var revoked string
	auth := &mockAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/logout", nil, withCookie("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully."}`, rec.Body.String())
	assert.Equal(t, "tok", revoked)

	cookie := sessionCookieFrom(t, rec.Result())
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestLogout_WithoutSessionStillSucceeds(t *testing.T) {
	called := false
	auth := &mockAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			called = true
			return nil
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
}

func TestLogout_DatabaseFailure(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			return errDatabaseDown
		},
	}

	rec := serve(newTestHandler(auth, nil), http.MethodPost, "/user/logout", nil, withBearer("tok"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
