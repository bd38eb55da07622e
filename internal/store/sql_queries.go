// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/Masterminds/squirrel"
)

const (
	columnID          = "id"
	columnName        = "name"
	columnDescription = "description"
)

var (
	itemsTable  = models.Item{}.TableName()
	itemColumns = []string{columnID, columnName, columnDescription}
)

// buildListItemsQuery selects up to limit items ordered by id.
func buildListItemsQuery(format squirrel.PlaceholderFormat, limit uint64) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(format).
		Select(itemColumns...).
		From(itemsTable).
		OrderBy(columnID).
		Limit(limit).
		ToSql()
}

// buildGetItemQuery selects a single item by its numeric id.
func buildGetItemQuery(format squirrel.PlaceholderFormat, id int64) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(format).
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{columnID: id}).
		ToSql()
}

// buildInsertItemQuery inserts item and returns the generated id.
// PostgreSQL and SQLite 3.35+ both support RETURNING.
func buildInsertItemQuery(format squirrel.PlaceholderFormat, item models.Item) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(format).
		Insert(itemsTable).
		Columns(columnName, columnDescription).
		Values(item.Name, item.Description).
		Suffix("RETURNING " + columnID).
		ToSql()
}
