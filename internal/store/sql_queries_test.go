// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListItemsQuery(t *testing.T) {
	tests := []struct {
		name       string
		format     squirrel.PlaceholderFormat
		limit      uint64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: ordered by id with inline limit",
			format: squirrel.Dollar,
			limit:  10,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				for _, col := range itemColumns {
					assert.Contains(t, q, col)
				}
				assert.Contains(t, q, "from items")
				assert.Contains(t, q, "order by id")
				assert.True(t, strings.HasSuffix(q, "limit 10"))
				assert.Empty(t, args)
			},
		},
		{
			name:   "success: question placeholders produce same statement",
			format: squirrel.Question,
			limit:  1,
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Equal(t, "SELECT id, name, description FROM items ORDER BY id LIMIT 1", query)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListItemsQuery(tt.format, tt.limit)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildGetItemQuery(t *testing.T) {
	tests := []struct {
		name      string
		format    squirrel.PlaceholderFormat
		wantQuery string
	}{
		{
			name:      "postgres placeholder",
			format:    squirrel.Dollar,
			wantQuery: "SELECT id, name, description FROM items WHERE id = $1",
		},
		{
			name:      "sqlite placeholder",
			format:    squirrel.Question,
			wantQuery: "SELECT id, name, description FROM items WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetItemQuery(tt.format, 42)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			require.Len(t, args, 1)
			assert.Equal(t, int64(42), args[0])
		})
	}
}

func Test_buildInsertItemQuery(t *testing.T) {
	description := "blue"

	tests := []struct {
		name       string
		format     squirrel.PlaceholderFormat
		item       models.Item
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: name and description",
			format: squirrel.Dollar,
			item:   models.Item{Name: "widget", Description: &description},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Equal(t, "INSERT INTO items (name,description) VALUES ($1,$2) RETURNING id", query)
				require.Len(t, args, 2)
				assert.Equal(t, "widget", args[0])
				assert.Equal(t, &description, args[1])
			},
		},
		{
			name:   "success: nil description is passed through",
			format: squirrel.Question,
			item:   models.Item{Name: "widget"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "VALUES (?,?)")
				require.Len(t, args, 2)
				assert.Nil(t, args[1])
			},
		},
		{
			name:   "success: id of the input is ignored",
			format: squirrel.Dollar,
			item:   models.Item{ID: "99", Name: "widget"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "(id")
				assert.NotContains(t, args, "99")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertItemQuery(tt.format, tt.item)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestItemQueries_UseModelTableName(t *testing.T) {
	table := models.Item{}.TableName()

	list, _, err := buildListItemsQuery(squirrel.Question, 1)
	require.NoError(t, err)
	assert.Contains(t, list, "FROM "+table)

	insert, _, err := buildInsertItemQuery(squirrel.Question, models.Item{Name: "widget"})
	require.NoError(t, err)
	assert.Contains(t, insert, "INSERT INTO "+table)

	assert.Equal(t, table+":ids", redisItemIDsKey)
}
