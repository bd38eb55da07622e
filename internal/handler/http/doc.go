// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the scaffold API over chi.
//
// Public routes serve the token endpoint, the item collection and the
// health checks. Routes under /protected require a bearer token issued by
// POST /auth/token. Trace ids, access logs, gzip and the item body digest
// are handled by middleware before a request reaches the service layer.
package http
