// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnknownHashAlgorithm is returned when no strategy is registered for
	// the requested algorithm identifier.
	ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")
	// ErrSecretTooLong is returned by the strict bcrypt hasher for secrets
	// above the 72-byte bcrypt input limit.
	ErrSecretTooLong = errors.New("secret exceeds 72 bytes")
)
