// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/service"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/validators"
	"github.com/MKhiriev/go-invoice-tracker/models"
	"github.com/stretchr/testify/assert"
)

var errDatabaseDown = fmt.Errorf("%w: dial tcp: connection refused", store.ErrDatabaseUnavailable)

func wrapInvalid(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"bad confirmation token", fmt.Errorf("email confirmation failed: %w", store.ErrInvalidConfirmationToken), http.StatusBadRequest},
		{"unconfirmed email", service.ErrEmailNotConfirmed, http.StatusForbidden},
		{"invalid session", service.ErrSessionIsExpiredOrInvalid, http.StatusUnauthorized},
		{"missing token", ErrMissingSessionToken, http.StatusUnauthorized},
		{"validation", wrapInvalid(validators.ErrInvalidStatus), http.StatusBadRequest},
		{"bad id", ErrInvalidInvoiceID, http.StatusBadRequest},
		{"invoice not found", fmt.Errorf("invoice lookup failed: %w", store.ErrInvoiceNotFound), http.StatusNotFound},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests},
		{"database down wins over statement error", fmt.Errorf("%w: %w", store.ErrDatabaseUnavailable, store.ErrExecutingStatement), http.StatusServiceUnavailable},
		{"statement error", store.ErrExecutingStatement, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "status is unknown", validationMessage(wrapInvalid(errors.New("status is unknown"))))
	assert.Equal(t, "invoice id must be positive",
		validationMessage(fmt.Errorf("%w: invoice id must be positive", service.ErrInvalidDataProvided)))
	assert.Equal(t, "invalid data provided", validationMessage(service.ErrInvalidDataProvided))
}

func TestWriteError_DetailsOnlyOutsideProduction(t *testing.T) {
	err := fmt.Errorf("invoice creation failed: %w", store.ErrExecutingStatement)

	for _, production := range []bool{false, true} {
		h := &Handler{production: production, logger: logger.Nop()}
		rec := httptest.NewRecorder()

		h.writeError(rec, httptest.NewRequest(http.MethodPost, "/api/invoices", nil), err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, models.KindServer, resp.Kind)
		assert.Equal(t, "Internal server error", resp.Message)
		if production {
			assert.Empty(t, resp.Details)
			assert.NotContains(t, rec.Body.String(), "failed to executing statement")
		} else {
			assert.Equal(t, err.Error(), resp.Details)
		}
	}
}
