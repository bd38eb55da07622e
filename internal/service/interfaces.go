// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scaffold-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemServiceWrapper

// AuthService verifies the configured principal's credentials and manages
// the access tokens issued to it.
type AuthService interface {
	// Authenticate checks name and secret against the configured principal.
	// Every mismatch yields ErrInvalidCredentials.
	Authenticate(ctx context.Context, name, secret string) (models.Principal, error)
	// IssueToken mints a signed access token for subject.
	IssueToken(ctx context.Context, subject string) (models.Token, error)
	// ParseToken verifies tokenString and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService lists, creates and reads items.
type ItemService interface {
	ListItems(ctx context.Context, limit int) ([]models.Item, error)
	CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
}

// AppInfoService reports build metadata and backend readiness.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
	Ready(ctx context.Context) error
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// logging or validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}
