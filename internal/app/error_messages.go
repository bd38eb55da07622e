// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into HTTP
// response bodies. Keeping them in one place keeps the wording of the API
// consistent and lets clients and tests refer to the exact strings.
package app

const (
	// MsgHello is the greeting served by GET /.
	MsgHello = "Hello from Go backend!"

	// MsgIncorrectCredentials is the only body detail of a failed login. It
	// is identical for unknown usernames and wrong passwords.
	MsgIncorrectCredentials = "Incorrect username or password"

	// MsgNotAuthenticated is returned by protected routes for a missing,
	// malformed, expired or forged bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgMalformedForm is returned when the token form cannot be parsed.
	MsgMalformedForm = "Malformed form body"

	// MsgMissingCredentials is returned when the token form lacks username
	// or password.
	MsgMissingCredentials = "username and password are required"

	// MsgInvalidJSON is returned when a request body is not a single JSON
	// object of the expected shape.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgInvalidLimit is returned when ?limit= is not an integer.
	MsgInvalidLimit = "limit must be an integer"

	// MsgInsertFailed is returned when the backend failed to store an item.
	MsgInsertFailed = "Insert failed"

	// MsgListFailed is returned when the backend failed to list items.
	MsgListFailed = "Failed to list items"

	// MsgItemNotFound is returned for unknown or malformed item ids.
	MsgItemNotFound = "Item not found"

	// MsgNotReady is returned by GET /ready when the backend does not answer.
	MsgNotReady = "Storage backend is not ready"

	// MsgIntegrityCheckFailed is returned when the body digest header does
	// not match the body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidGzip is returned when a gzip request body cannot be read.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "Internal server error"
)
