// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPersistence marks every failure that originated in the storage
	// backend (driver errors, timeouts, broken connections). Domain-level
	// errors such as [ErrItemNotFound] are not wrapped in it.
	ErrPersistence = errors.New("persistence error")

	// ErrItemNotFound is returned when no item matches the requested id,
	// including ids that cannot exist in the backend (e.g. a non-numeric id
	// on a relational backend).
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemNotSaved is returned when an insert completes without returning
	// the identifier of the new item.
	ErrItemNotSaved = errors.New("item was not saved")

	// ErrUnsupportedStorage is returned when the DSN scheme does not select
	// any known backend.
	ErrUnsupportedStorage = errors.New("unsupported storage")
)

// Low-level operation errors. These are wrapped together with
// [ErrPersistence] when a backend call fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement or command
	// against the backend fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan item row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan item rows")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into an item.
	ErrDecodingDocument = errors.New("failed to decode item document")

	// ErrMigratingSchema is returned when the item schema cannot be created.
	ErrMigratingSchema = errors.New("failed to migrate item schema")
)

// persistenceError wraps err with [ErrPersistence] and the operation-level
// cause so callers can match either with [errors.Is].
func persistenceError(cause, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %w", ErrPersistence, cause)
	}
	return fmt.Errorf("%w: %w: %w", ErrPersistence, cause, err)
}
