// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/crypto"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/internal/workers"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It authenticates the single configured principal and handles the JWT
// token lifecycle using HMAC-SHA256.
type authService struct {
	// principal is the only identity that can log in. Read-only.
	principal models.Principal

	// verifier compares a submitted secret with principal.SecretHash using
	// the configured algorithm.
	verifier crypto.PasswordVerifier

	// pool runs the CPU-bound hash comparisons so that concurrent logins
	// cannot occupy more than pool.Size() cores.
	pool *workers.Pool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for "iat", "exp" and expiry checks.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService for the principal and token
// parameters in cfg. Hash comparisons are executed on pool.
//
// Returns crypto.ErrUnknownHashAlgorithm if the configured algorithm is not
// supported. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(cfg config.App, pool *workers.Pool, logger *logger.Logger) (AuthService, error) {
	algorithm, ok := models.ParseHashAlgorithm(cfg.Principal.HashAlgorithm)
	if !ok {
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnknownHashAlgorithm, cfg.Principal.HashAlgorithm)
	}

	verifier, err := crypto.NewPasswordVerifier(algorithm)
	if err != nil {
		return nil, err
	}

	return &authService{
		principal: models.Principal{
			Name:       cfg.Principal.Name,
			SecretHash: cfg.Principal.Hash,
			Algorithm:  algorithm,
		},
		verifier:      verifier,
		pool:          pool,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// Authenticate verifies a (name, secret) pair against the configured
// principal.
//
// The name is compared in constant time and the hash comparison runs even
// when the name does not match, so an unknown name and a wrong secret cost
// the same and both return ErrInvalidCredentials.
//
// If ctx is cancelled while waiting for a pool worker, the context error is
// returned wrapped; it is not an authentication failure.
func (a *authService) Authenticate(ctx context.Context, name, secret string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	nameMatches := subtle.ConstantTimeCompare([]byte(name), []byte(a.principal.Name)) == 1

	secretMatches, err := workers.Do(ctx, a.pool, func() bool {
		return a.verifier.Verify(secret, a.principal.SecretHash)
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("credential verification aborted")
		return models.Principal{}, fmt.Errorf("credential verification aborted: %w", err)
	}

	if !nameMatches || !secretMatches {
		log.Warn().Str("func", "*authService.Authenticate").Msg("invalid credentials")
		return models.Principal{}, ErrInvalidCredentials
	}

	return a.principal, nil
}

// IssueToken issues a signed JWT for subject.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) IssueToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer and the expiry. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors; expired tokens additionally match ErrTokenIsExpired.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrTokenIsExpired)
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
