// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withMetrics records request count, latency and in-flight requests. The
// route label is chi's matched pattern, read after routing has finished, so
// ids in the path do not explode label cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := h.metrics.RequestStarted()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		done(r.Method, route, mw.Status())
	})
}
