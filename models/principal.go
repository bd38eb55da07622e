// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// HashAlgorithm identifies the password verification strategy that was used
// to produce [Principal.SecretHash].
type HashAlgorithm string

const (
	// HashBcrypt compares the full secret with bcrypt. Secrets longer than
	// 72 bytes never verify.
	HashBcrypt HashAlgorithm = "bcrypt"

	// HashBcryptTruncated72 truncates the secret to its first 72 bytes before
	// the bcrypt comparison. Any secret sharing that prefix verifies.
	HashBcryptTruncated72 HashAlgorithm = "bcrypt_truncated72"

	// HashSHA256 compares the hex-encoded, unsalted SHA-256 digest of the secret.
	// Demonstration only.
	HashSHA256 HashAlgorithm = "sha256"
)

// ParseHashAlgorithm normalises a configured algorithm identifier.
// Matching is case-insensitive, so "BCRYPT_TRUNCATED72" and
// "bcrypt_truncated72" are equivalent. The boolean is false for unknown values.
func ParseHashAlgorithm(s string) (HashAlgorithm, bool) {
	switch alg := HashAlgorithm(strings.ToLower(strings.TrimSpace(s))); alg {
	case HashBcrypt, HashBcryptTruncated72, HashSHA256:
		return alg, true
	default:
		return "", false
	}
}

// String implements [fmt.Stringer].
func (a HashAlgorithm) String() string {
	return string(a)
}

// Principal is the single identity the server can authenticate.
// It is loaded from configuration at startup and never changes afterwards.
type Principal struct {
	// Name is matched exactly (case-sensitive) against the submitted username.
	Name string `json:"name"`

	// SecretHash is the stored hash of the principal's password.
	// Never exposed via JSON.
	SecretHash string `json:"-"`

	// Algorithm selects how SecretHash is compared against a submitted secret.
	Algorithm HashAlgorithm `json:"-"`
}
