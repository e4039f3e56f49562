// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the invoice tracker.
//
// It exposes route wiring, request handlers and middleware used by the REST
// API. Cross-cutting concerns such as session authentication, request
// tracing, access logging, metrics, CORS, rate limiting and response
// compression are handled here before requests reach the service layer.
// Every error reply uses the single [models.ErrorResponse] envelope.
package http
