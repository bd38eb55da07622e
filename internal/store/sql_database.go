// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/migrations"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// DB is a relational connection pool together with the dialect-specific
// pieces the item repository needs.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded item schema for the connection's dialect.
// A table that already exists is not an error.
func (db *DB) Migrate(ctx context.Context) error {
	err := migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
	if err != nil && isAlreadyExists(err) {
		db.logger.Warn().Err(err).Str("func", "*DB.Migrate").Msg("schema already exists")
		return nil
	}
	return err
}

// placeholder returns the bind variable format of the dialect.
func (db *DB) placeholder() squirrel.PlaceholderFormat {
	if db.dialect == migrations.DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func isAlreadyExists(err error) bool {
	if postgresError(err) == pgerrcode.DuplicateTable {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}
