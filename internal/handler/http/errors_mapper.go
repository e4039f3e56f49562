// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/service"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

type errorMapping struct {
	target  error
	status  int
	kind    models.ErrorKind
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrInvalidCredentials, http.StatusBadRequest, models.KindAuth, "Invalid credentials"},
	{store.ErrInvalidConfirmationToken, http.StatusBadRequest, models.KindAuth, "Invalid token."},
	{service.ErrEmailNotConfirmed, http.StatusForbidden, models.KindAuth, "Please confirm your email before logging in."},
	{service.ErrSessionIsExpiredOrInvalid, http.StatusUnauthorized, models.KindAuth, "Unauthorized"},
	{ErrMissingSessionToken, http.StatusUnauthorized, models.KindAuth, "Unauthorized"},

	{ErrInvalidJSON, http.StatusBadRequest, models.KindValidation, "Invalid JSON was passed"},
	{ErrInvalidInvoiceID, http.StatusBadRequest, models.KindValidation, "Invalid invoice id"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, models.KindValidation, ""},

	{store.ErrInvoiceNotFound, http.StatusNotFound, models.KindNotFound, "Invoice not found"},
	{errRouteNotFound, http.StatusNotFound, models.KindNotFound, "Route not found"},
	{errMethodNotAllowed, http.StatusMethodNotAllowed, models.KindNotFound, "Method not allowed"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, models.KindConflict, "Email already registered"},
	{ErrRateLimited, http.StatusTooManyRequests, models.KindRateLimited, "Too many requests"},

	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, models.KindServer, "Service temporarily unavailable"},
}

var internalErrorMapping = errorMapping{
	status:  http.StatusInternalServerError,
	kind:    models.KindServer,
	message: "Internal server error",
}

func mappingFromError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return internalErrorMapping
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError renders err as the JSON error envelope. Validation failures
// carry their own text as the message; every other kind uses a fixed one.
// The wrapped error text goes into details outside production only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	m := mappingFromError(err)

	resp := models.ErrorResponse{Kind: m.kind, Message: m.message}
	if m.message == "" {
		resp.Message = validationMessage(err)
	}
	if !h.production {
		resp.Details = err.Error()
	}

	if m.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", m.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", m.status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, m.status)
}

// validationMessage strips everything up to the ErrInvalidDataProvided
// prefix so only the failing rule is shown.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := service.ErrInvalidDataProvided.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return msg
}
