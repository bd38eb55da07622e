// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the scaffold API.
//
// [ServerAdapter] hides the HTTP details from callers. Failed responses are
// mapped to the sentinel errors in errors.go, so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-scaffold-api/models"
)

// ServerAdapter is the client side of the HTTP API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// TokenExpiresAt reads the "exp" claim of the stored token without
	// verifying its signature. ok is false when no usable token is stored.
	TokenExpiresAt() (expiresAt time.Time, ok bool)

	// Login exchanges username and password for an access token and stores
	// it via SetToken.
	Login(ctx context.Context, username, password string) (models.AccessTokenResponse, error)

	// Me returns the identity behind the stored token.
	Me(ctx context.Context) (models.MeResponse, error)

	// ListItems fetches up to limit items. A non-positive limit lets the
	// server apply its default.
	ListItems(ctx context.Context, limit int) ([]models.Item, error)

	// CreateItem stores a new item and returns its id. The request body is
	// sent with a content digest the server verifies.
	CreateItem(ctx context.Context, request models.CreateItemRequest) (models.CreateItemResponse, error)

	// GetItem fetches a single item by id.
	GetItem(ctx context.Context, id string) (models.Item, error)

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
