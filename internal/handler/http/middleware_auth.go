// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The session token is taken from an `Authorization: Bearer` header or,
// failing that, from the `sid` cookie, and resolved through
// [service.AuthService.Authenticate]. On success the session is stored in the
// request context via [utils.WithSession] and the request logger gains a
// user_id field. Any failure is answered with 401 before next runs.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := sessionTokenFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", session.Data.UserID)
		})
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
