// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/models"
	"github.com/go-chi/chi/v5"
)

const msgInvoiceDeleted = "Invoice deleted successfully."

func invoiceIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInvoiceID, chi.URLParam(r, "id"))
	}
	return id, nil
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := utils.DecodeJSON(r, &invoice); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.InvoiceService.CreateInvoice(r.Context(), invoice)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("invoice_id", created.ID).Msg("invoice created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.services.InvoiceService.GetInvoices(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if invoices == nil {
		invoices = []models.Invoice{}
	}
	utils.WriteJSON(w, invoices, http.StatusOK)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	invoice, err := h.services.InvoiceService.GetInvoiceByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var invoice models.Invoice
	if err = utils.DecodeJSON(r, &invoice); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.InvoiceService.UpdateInvoice(r.Context(), id, invoice)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) updateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.StatusUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.InvoiceService.UpdateInvoiceStatus(r.Context(), id, update.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.InvoiceService.DeleteInvoice(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("invoice_id", id).Msg("invoice deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: msgInvoiceDeleted}, http.StatusOK)
}
