// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// Each item is stored as a JSON document under "items:<id>". The list
// "items:ids" keeps insertion order, which is the order ListItems returns.
var (
	redisItemKeyPrefix = models.Item{}.TableName() + ":"
	redisItemIDsKey    = redisItemKeyPrefix + "ids"
)

// redisItemRepository is the document-store implementation of
// [ItemRepository]. Identifiers are generated UUIDv7 strings.
type redisItemRepository struct {
	client             *redis.Client
	ids                utils.IDGenerator
	errorClassificator ErrorClassificator
	operationTimeout   time.Duration
	listLimit          int
	logger             *logger.Logger
}

// NewConnectRedis parses cfg.DSN as a redis:// URL, connects and pings
// the server.
func NewConnectRedis(ctx context.Context, cfg config.DB, log *logger.Logger) (*redis.Client, error) {
	client, err := newRedisClient(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error parsing redis DSN")
		return nil, err
	}

	pingCtx, cancel := withOperationTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("dsn", redactDSN(cfg.DSN)).Msg("connected to redis successfully")

	return client, nil
}

// newRedisClient builds a client whose socket I/O follows the context
// deadline of each call, so OperationTimeout bounds every command.
func newRedisClient(cfg config.DB) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis DSN: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		opts.PoolSize = cfg.MaxOpenConns
	}

	opts.ContextTimeoutEnabled = true
	if cfg.OperationTimeout > 0 {
		opts.DialTimeout = cfg.OperationTimeout
		opts.ReadTimeout = cfg.OperationTimeout
		opts.WriteTimeout = cfg.OperationTimeout
	}

	return redis.NewClient(opts), nil
}

// NewRedisItemRepository constructs an [ItemRepository] backed by client.
func NewRedisItemRepository(client *redis.Client, ids utils.IDGenerator, cfg config.DB, log *logger.Logger) ItemRepository {
	log.Debug().Msg("creating redis item repository")
	return &redisItemRepository{
		client:             client,
		ids:                ids,
		errorClassificator: NewRedisErrorClassifier(),
		operationTimeout:   cfg.OperationTimeout,
		listLimit:          cfg.ListLimit,
		logger:             log,
	}
}

// EnsureSchema is a no-op: documents need no schema.
func (r *redisItemRepository) EnsureSchema(context.Context) error {
	return nil
}

func (r *redisItemRepository) ListItems(ctx context.Context, limit int) ([]models.Item, error) {
	log := logger.FromContext(ctx)
	stop := int64(effectiveLimit(limit, r.listLimit)) - 1

	backoff := retry.WithMaxRetries(listRetries, retry.NewFibonacci(listRetryBase))
	items, err := retry.DoValue(ctx, backoff, func(ctx context.Context) ([]models.Item, error) {
		items, err := r.listItems(ctx, stop)
		if err != nil && r.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*redisItemRepository.ListItems").Msg("transient error, retrying")
			return nil, retry.RetryableError(err)
		}
		return items, err
	})
	if err != nil {
		log.Err(err).Str("func", "*redisItemRepository.ListItems").Msg("error listing items")
		if !errors.Is(err, ErrPersistence) {
			return nil, persistenceError(ErrExecutingQuery, err)
		}
		return nil, err
	}

	return items, nil
}

func (r *redisItemRepository) listItems(ctx context.Context, stop int64) ([]models.Item, error) {
	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	ids, err := r.client.LRange(ctx, redisItemIDsKey, 0, stop).Result()
	if err != nil {
		return nil, persistenceError(ErrExecutingQuery, err)
	}

	items := make([]models.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}

	docs, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, persistenceError(ErrExecutingQuery, err)
	}

	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			// id listed but document missing
			continue
		}

		var item models.Item
		if err = json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, persistenceError(ErrDecodingDocument, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// CreateItem stores the document and appends its id to the ordering list
// in one MULTI/EXEC transaction.
func (r *redisItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	item.ID = r.ids.Generate()
	doc, err := json.Marshal(item)
	if err != nil {
		return models.Item{}, persistenceError(ErrItemNotSaved, err)
	}

	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, itemKey(item.ID), doc, 0)
		pipe.RPush(ctx, redisItemIDsKey, item.ID)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*redisItemRepository.CreateItem").Msg("error saving item")
		return models.Item{}, persistenceError(ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *redisItemRepository) GetItem(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	raw, err := r.client.Get(ctx, itemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*redisItemRepository.GetItem").Msg("error reading item")
		return models.Item{}, persistenceError(ErrExecutingQuery, err)
	}

	var item models.Item
	if err = json.Unmarshal(raw, &item); err != nil {
		return models.Item{}, persistenceError(ErrDecodingDocument, err)
	}
	return item, nil
}

func (r *redisItemRepository) Ping(ctx context.Context) error {
	ctx, cancel := withOperationTimeout(ctx, r.operationTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return persistenceError(ErrExecutingQuery, err)
	}
	return nil
}

func (r *redisItemRepository) Close() error {
	return r.client.Close()
}

func itemKey(id string) string {
	return redisItemKeyPrefix + id
}
