// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS)

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)

		r.Route("/user", func(r chi.Router) {
			r.With(h.withRateLimit).Post("/register", h.register)
			r.With(h.withRateLimit).Post("/login", h.login)
			r.Get("/confirm-email", h.confirmEmail)
			r.Post("/logout", h.logout)
		})

		// routes with session authorization
		r.Route("/api", func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.createInvoice)
				r.Get("/", h.getInvoices)
				r.Get("/{id}", h.getInvoice)
				r.Put("/{id}", h.updateInvoice)
				r.Delete("/{id}", h.deleteInvoice)
				r.Put("/{id}/status", h.updateInvoiceStatus)
				r.Patch("/{id}/status", h.updateInvoiceStatus)
			})
		})
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
