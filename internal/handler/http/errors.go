// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged when a request is rejected before it reaches the
// service layer.
var (
	// ErrInvalidAuthorizationHeader is returned by the auth middleware when
	// the "Authorization" header is missing or is not a bearer credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingFormField is returned when the token form lacks username or
	// password.
	ErrMissingFormField = errors.New("missing username or password")

	// ErrContentHashMismatch is returned when the body digest announced in
	// the content hash header does not match the received body.
	ErrContentHashMismatch = errors.New("content hash mismatch")
)
