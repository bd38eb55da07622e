// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/sethvargo/go-retry"
)

// listRetryBase is the first Fibonacci backoff step of a retried list call.
const listRetryBase = 50 * time.Millisecond

// listRetries is the number of extra attempts after the first list call.
const listRetries = 2

// sqlItemRepository is the relational implementation of [ItemRepository].
// The same code serves PostgreSQL and SQLite; the dialect only changes the
// placeholder format and the error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlItemRepository struct {
	db               *DB
	operationTimeout time.Duration
	listLimit        int
	logger           *logger.Logger
}

// NewSQLItemRepository constructs an [ItemRepository] backed by db.
func NewSQLItemRepository(db *DB, cfg config.DB, log *logger.Logger) ItemRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating sql item repository")
	return &sqlItemRepository{
		db:               db,
		operationTimeout: cfg.OperationTimeout,
		listLimit:        cfg.ListLimit,
		logger:           log,
	}
}

func (r *sqlItemRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.Migrate(ctx); err != nil {
		r.logger.Err(err).Str("func", "*sqlItemRepository.EnsureSchema").Msg("error migrating item schema")
		return persistenceError(ErrMigratingSchema, err)
	}
	return nil
}

// ListItems returns up to limit items ordered by id. Transient failures
// (as judged by the dialect's classifier) are retried with a Fibonacci
// backoff; each attempt gets its own operation timeout.
func (r *sqlItemRepository) ListItems(ctx context.Context, limit int) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.db.placeholder(), uint64(effectiveLimit(limit, r.listLimit)))
	if err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.ListItems").Msg("error building query")
		return nil, persistenceError(ErrBuildingSQLQuery, err)
	}

	backoff := retry.WithMaxRetries(listRetries, retry.NewFibonacci(listRetryBase))
	items, err := retry.DoValue(ctx, backoff, func(ctx context.Context) ([]models.Item, error) {
		items, err := r.listItems(ctx, query, args)
		if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*sqlItemRepository.ListItems").Msg("transient error, retrying")
			return nil, retry.RetryableError(err)
		}
		return items, err
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.ListItems").Msg("error listing items")
		if !errors.Is(err, ErrPersistence) {
			return nil, persistenceError(ErrExecutingQuery, err)
		}
		return nil, err
	}

	return items, nil
}

func (r *sqlItemRepository) listItems(ctx context.Context, query string, args []any) ([]models.Item, error) {
	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistenceError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, persistenceError(ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, persistenceError(ErrScanningRows, err)
	}

	return items, nil
}

// CreateItem inserts item and returns it with the generated id.
// Inserts are never retried.
func (r *sqlItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.db.placeholder(), item)
	if err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.CreateItem").Msg("error building query")
		return models.Item{}, persistenceError(ErrBuildingSQLQuery, err)
	}

	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.CreateItem").Msg("error inserting item")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, persistenceError(ErrItemNotSaved, err)
		}
		return models.Item{}, persistenceError(ErrExecutingQuery, err)
	}

	item.ID = strconv.FormatInt(id, 10)
	return item, nil
}

// GetItem returns the item with the given id. Non-numeric ids cannot exist
// in a relational backend and yield [ErrItemNotFound].
func (r *sqlItemRepository) GetItem(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}

	query, args, err := buildGetItemQuery(r.db.placeholder(), numericID)
	if err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.GetItem").Msg("error building query")
		return models.Item{}, persistenceError(ErrBuildingSQLQuery, err)
	}

	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlItemRepository.GetItem").Msg("error reading item")
		return models.Item{}, persistenceError(ErrScanningRow, err)
	}

	return item, nil
}

func (r *sqlItemRepository) Ping(ctx context.Context) error {
	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return persistenceError(ErrExecutingQuery, err)
	}
	return nil
}

func (r *sqlItemRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		id          int64
		item        models.Item
		description sql.NullString
	)

	if err := row.Scan(&id, &item.Name, &description); err != nil {
		return models.Item{}, err
	}

	item.ID = strconv.FormatInt(id, 10)
	if description.Valid {
		item.Description = &description.String
	}
	return item, nil
}

// effectiveLimit applies the default list limit to non-positive requests.
func effectiveLimit(limit, defaultLimit int) int {
	if limit > 0 {
		return limit
	}
	if defaultLimit > 0 {
		return defaultLimit
	}
	return config.DefaultListLimit
}

// withOperationTimeout bounds a single backend call. A non-positive timeout
// leaves the parent deadline in charge.
func withOperationTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
