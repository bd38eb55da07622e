// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_mock.go -package=mock

// PasswordVerifier checks a plaintext secret against a stored hash.
//
// Implementations never return an error: a malformed stored hash, an
// over-long secret or any other failure simply yields false. Verify is safe
// for concurrent use.
type PasswordVerifier interface {
	// Verify reports whether secret matches storedHash.
	Verify(secret, storedHash string) bool
}

// PasswordHasher produces a stored hash for a plaintext secret, in the format
// the matching [PasswordVerifier] accepts.
type PasswordHasher interface {
	// Hash returns the encoded hash of secret.
	Hash(secret string) (string, error)
}

// PasswordStrategy combines hashing and verification for one algorithm.
type PasswordStrategy interface {
	PasswordVerifier
	PasswordHasher
}
