// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-scaffold-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/item_repository_mock.go -package=mock

// ItemRepository is the storage contract shared by every item backend.
// Identifiers are opaque strings at this boundary regardless of how the
// backend represents them. Implementations are safe for concurrent use.
type ItemRepository interface {
	// EnsureSchema creates the item table or collection if it is absent.
	// Calling it on an initialised backend succeeds.
	EnsureSchema(ctx context.Context) error

	// ListItems returns at most limit items in backend order. A limit of
	// zero or less selects the configured default.
	ListItems(ctx context.Context, limit int) ([]models.Item, error)

	// CreateItem persists item and returns it with the assigned ID.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// GetItem returns the item with the given id or [ErrItemNotFound].
	GetItem(ctx context.Context, id string) (models.Item, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend connection pool.
	Close() error
}

// ErrorClassification is the result returned by [ErrorClassificator.Classify].
// It indicates whether a failed backend operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a lock timeout).
	Retryable
)

// ErrorClassificator decides whether a backend error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
