// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func mustStrategy(t *testing.T, alg models.HashAlgorithm) PasswordStrategy {
	t.Helper()
	s, err := NewPasswordStrategy(alg, bcrypt.MinCost)
	require.NoError(t, err)
	return s
}

func mustHash(t *testing.T, s PasswordHasher, secret string) string {
	t.Helper()
	h, err := s.Hash(secret)
	require.NoError(t, err)
	return h
}

// ── constructors ──────────────────────────────────────────────────────────────

func TestNewPasswordVerifier_KnownAlgorithms(t *testing.T) {
	for _, alg := range []models.HashAlgorithm{
		models.HashBcrypt,
		models.HashBcryptTruncated72,
		models.HashSHA256,
	} {
		t.Run(alg.String(), func(t *testing.T) {
			v, err := NewPasswordVerifier(alg)
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestNewPasswordVerifier_UnknownAlgorithm(t *testing.T) {
	v, err := NewPasswordVerifier(models.HashAlgorithm("md5"))
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrUnknownHashAlgorithm)
}

func TestNewPasswordStrategy_CostOutOfRangeFallsBack(t *testing.T) {
	s, err := NewPasswordStrategy(models.HashBcrypt, 1)
	require.NoError(t, err)

	h := mustHash(t, s, "secret")
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

// ── verify ────────────────────────────────────────────────────────────────────

func TestVerify_MatchesOnlyOriginalSecret(t *testing.T) {
	for _, alg := range []models.HashAlgorithm{
		models.HashBcrypt,
		models.HashBcryptTruncated72,
		models.HashSHA256,
	} {
		t.Run(alg.String(), func(t *testing.T) {
			s := mustStrategy(t, alg)
			stored := mustHash(t, s, "correct horse")

			assert.True(t, s.Verify("correct horse", stored))
			assert.False(t, s.Verify("correct horsE", stored))
			assert.False(t, s.Verify("", stored))
		})
	}
}

func TestVerify_MalformedStoredHash(t *testing.T) {
	tests := []struct {
		name   string
		alg    models.HashAlgorithm
		stored string
	}{
		{"bcrypt garbage", models.HashBcrypt, "not-a-bcrypt-hash"},
		{"bcrypt empty", models.HashBcrypt, ""},
		{"truncated garbage", models.HashBcryptTruncated72, "$2a$xx"},
		{"sha256 wrong length", models.HashSHA256, "abc"},
		{"sha256 empty", models.HashSHA256, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustStrategy(t, tt.alg)
			assert.False(t, s.Verify("secret", tt.stored))
		})
	}
}

func TestVerify_SHA256_KnownDigest(t *testing.T) {
	s := mustStrategy(t, models.HashSHA256)

	// sha256("abc")
	stored := "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"
	assert.True(t, s.Verify("abc", stored), "stored digest is compared case-insensitively")
	assert.True(t, s.Verify("abc", " "+strings.ToLower(stored)+"\n"))
	assert.False(t, s.Verify("abd", stored))
}

// ── 72-byte boundary ──────────────────────────────────────────────────────────

func TestBcrypt_RejectsSecretsAbove72Bytes(t *testing.T) {
	s := mustStrategy(t, models.HashBcrypt)

	prefix := strings.Repeat("a", 72)
	stored := mustHash(t, s, prefix)

	assert.True(t, s.Verify(prefix, stored))
	assert.False(t, s.Verify(prefix+"b", stored), "strict bcrypt never truncates")

	_, err := s.Hash(prefix + "b")
	assert.ErrorIs(t, err, ErrSecretTooLong)
}

func TestBcryptTruncated72_PrefixHazard(t *testing.T) {
	s := mustStrategy(t, models.HashBcryptTruncated72)

	prefix := strings.Repeat("x", 72)
	stored := mustHash(t, s, prefix+"original-tail")

	assert.True(t, s.Verify(prefix+"original-tail", stored))
	assert.True(t, s.Verify(prefix+"completely-different", stored))
	assert.True(t, s.Verify(prefix, stored))
	assert.False(t, s.Verify(strings.Repeat("x", 71), stored))
}

func TestBcryptTruncated72_MultiByteBoundary(t *testing.T) {
	s := mustStrategy(t, models.HashBcryptTruncated72)

	// 36 two-byte runes fill the 72-byte window exactly.
	secret := strings.Repeat("é", 40)
	stored := mustHash(t, s, secret)

	assert.True(t, s.Verify(secret, stored))
	assert.True(t, s.Verify(strings.Repeat("é", 36), stored))
}

func TestBcrypt_CrossVariantCompatibility(t *testing.T) {
	strict := mustStrategy(t, models.HashBcrypt)
	truncated := mustStrategy(t, models.HashBcryptTruncated72)

	stored := mustHash(t, strict, "short secret")
	assert.True(t, truncated.Verify("short secret", stored))
}
