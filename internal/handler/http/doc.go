// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the access gate.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// client address resolution and login rate limiting are handled in this
// package before requests are delegated to the service layer. It is also the
// only place where service errors are turned into status codes and bodies.
package http
