// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

const (
	msgRegistered     = "User registered successfully. Please check your email to confirm your account."
	msgEmailConfirmed = "Email confirmed. You can now log in."
	msgLoggedOut      = "Logged out successfully."
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	reg, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", reg.User.UserID).Msg("user registered")

	resp := models.RegisterResponse{Message: msgRegistered, User: reg.User}
	if !h.production {
		resp.Token = reg.ConfirmationToken
	}
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.ConfirmEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgEmailConfirmed}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, session, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, session.SignedToken, session.ExpiresAt)
	utils.WriteJSON(w, models.LoginResponse{
		User:      user,
		Token:     session.SignedToken,
		ExpiresAt: session.ExpiresAt,
	}, http.StatusOK)
}

// logout always succeeds for the client; only a database failure while
// revoking the session is reported.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token, err := sessionTokenFromRequest(r); err == nil {
		if err = h.services.AuthService.Logout(r.Context(), token); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}
