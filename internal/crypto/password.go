// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password verification strategies used to
// authenticate the configured principal.
//
// Three algorithms are supported:
//   - bcrypt: standard bcrypt, secrets above 72 bytes never verify;
//   - bcrypt_truncated72: bcrypt over the first 72 bytes of the secret, kept
//     for hashes created by tools that truncate silently;
//   - sha256: unsalted hex SHA-256, for demonstrations only.
package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxSecretLen is the number of secret bytes bcrypt actually consumes.
const bcryptMaxSecretLen = 72

// NewPasswordVerifier returns the verification strategy for alg.
func NewPasswordVerifier(alg models.HashAlgorithm) (PasswordVerifier, error) {
	return NewPasswordStrategy(alg, bcrypt.DefaultCost)
}

// NewPasswordHasher returns the hashing strategy for alg. cost is only used
// by the bcrypt variants; values outside bcrypt's range fall back to
// bcrypt.DefaultCost.
func NewPasswordHasher(alg models.HashAlgorithm, cost int) (PasswordHasher, error) {
	return NewPasswordStrategy(alg, cost)
}

// NewPasswordStrategy returns the combined hasher and verifier for alg.
func NewPasswordStrategy(alg models.HashAlgorithm, cost int) (PasswordStrategy, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	switch alg {
	case models.HashBcrypt:
		return &bcryptStrategy{cost: cost}, nil
	case models.HashBcryptTruncated72:
		return &bcryptStrategy{cost: cost, truncate: true}, nil
	case models.HashSHA256:
		return &sha256Strategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, alg)
	}
}

// bcryptStrategy verifies bcrypt hashes. With truncate set, secrets are cut
// to 72 bytes before comparison, so any two secrets sharing that prefix
// verify against the same hash.
type bcryptStrategy struct {
	cost     int
	truncate bool
}

func (s *bcryptStrategy) Verify(secret, storedHash string) bool {
	input, ok := s.input(secret)
	if !ok {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), input) == nil
}

func (s *bcryptStrategy) Hash(secret string) (string, error) {
	input, ok := s.input(secret)
	if !ok {
		return "", ErrSecretTooLong
	}

	hash, err := bcrypt.GenerateFromPassword(input, s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrSecretTooLong
		}
		return "", fmt.Errorf("error generating bcrypt hash: %w", err)
	}

	return string(hash), nil
}

// input returns the bytes fed to bcrypt. The strict variant rejects secrets
// that bcrypt would otherwise truncate without notice.
func (s *bcryptStrategy) input(secret string) ([]byte, bool) {
	b := []byte(secret)
	if len(b) <= bcryptMaxSecretLen {
		return b, true
	}
	if !s.truncate {
		return nil, false
	}

	return b[:bcryptMaxSecretLen], true
}

// sha256Strategy compares hex-encoded unsalted SHA-256 digests.
type sha256Strategy struct{}

func (s *sha256Strategy) Verify(secret, storedHash string) bool {
	expected := strings.ToLower(strings.TrimSpace(storedHash))
	actual := utils.HashString(secret)

	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}

func (s *sha256Strategy) Hash(secret string) (string, error) {
	return utils.HashString(secret), nil
}
