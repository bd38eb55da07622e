// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"net/url"
	"strings"
)

// Backend identifies the storage engine selected by a DSN.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
)

// DetectBackend selects the item backend from the DSN scheme:
//
//	postgres://, postgresql://      PostgreSQL
//	sqlite://, file:, *.db, :memory: SQLite
//	redis://, rediss://             Redis
func DetectBackend(dsn string) (Backend, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return BackendRedis, nil
	case strings.HasPrefix(lower, "sqlite://"),
		strings.HasPrefix(lower, "sqlite3://"),
		strings.HasPrefix(lower, "file:"),
		lower == ":memory:",
		!strings.Contains(lower, "://") && (strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite")):
		return BackendSQLite, nil
	}

	return "", fmt.Errorf("%w: cannot select backend for DSN %q", ErrUnsupportedStorage, redactDSN(dsn))
}

// sqliteDataSource converts a sqlite:// DSN into the data source name
// understood by go-sqlite3. "sqlite://data.db" becomes "data.db" and
// "sqlite:///var/lib/app.db" becomes "/var/lib/app.db". Other forms pass
// through unchanged.
func sqliteDataSource(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	for _, prefix := range []string{"sqlite://", "sqlite3://"} {
		if len(dsn) >= len(prefix) && strings.EqualFold(dsn[:len(prefix)], prefix) {
			return dsn[len(prefix):]
		}
	}
	return dsn
}

// redactDSN hides the password part of a URL-style DSN so it can be logged.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<malformed DSN>"
	}
	return u.Redacted()
}
