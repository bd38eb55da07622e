// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the relational schema of the item store and
// applies it with goose. Each dialect has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Migrate applies every pending migration of dialect to db. Already applied
// migrations are skipped, so calling Migrate repeatedly is safe.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	fsys, err := fs.Sub(embedMigrations, string(dialect))
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys,
		goose.WithDisableGlobalRegistry(true),
		goose.WithLogger(gooseLogger{log}),
	)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	for _, result := range results {
		log.Info().
			Str("func", "migrations.Migrate").
			Str("migration", result.Source.Path).
			Dur("duration", result.Duration).
			Msg("migration applied")
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}
