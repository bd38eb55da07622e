// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: every statement goose sends fails
	_ = mock

	err = Migrate(context.Background(), db, DialectPostgres, logger.Nop())
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectSQLite, logger.Nop())
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	err := Migrate(context.Background(), openSQLite(t), Dialect("oracle"), logger.Nop())
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestMigrate_SQLiteCreatesItemsTable(t *testing.T) {
	db := openSQLite(t)

	if err := Migrate(context.Background(), db, DialectSQLite, logger.Nop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var name string
	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'items'`)
	if err := row.Scan(&name); err != nil {
		t.Fatalf("items table not found: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	for i := range 3 {
		if err := Migrate(ctx, db, DialectSQLite, logger.Nop()); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}
}

func TestMigrate_TableCreatedOutsideGoose(t *testing.T) {
	db := openSQLite(t)

	_, err := db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name VARCHAR(255) NOT NULL, description VARCHAR(1024))`)
	if err != nil {
		t.Fatalf("failed to pre-create table: %v", err)
	}

	if err := Migrate(context.Background(), db, DialectSQLite, logger.Nop()); err != nil {
		t.Fatalf("expected pre-existing table to be accepted, got: %v", err)
	}
}
