// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// routeNotFound replaces chi's plain-text 404 with the JSON error envelope.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errRouteNotFound)
}

// methodNotAllowed answers a known path requested with an unregistered
// method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errMethodNotAllowed)
}
