// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
)

// Storages groups every repository used by the service layer.
type Storages struct {
	ItemRepository ItemRepository
}

// NewStorages connects to the backend selected by the DSN scheme and
// builds the repositories on top of it. The schema is not created here;
// call [ItemRepository.EnsureSchema] once at startup.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, err := DetectBackend(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("unsupported storage DSN")
		return nil, err
	}

	var repository ItemRepository
	switch backend {
	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		repository = NewSQLItemRepository(db, cfg.DB, log)
	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		repository = NewSQLItemRepository(db, cfg.DB, log)
	case BackendRedis:
		client, err := NewConnectRedis(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		repository = NewRedisItemRepository(client, utils.NewUUIDGenerator(), cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStorage, backend)
	}

	log.Info().Str("func", "NewStorages").Str("backend", string(backend)).Msg("item storage selected")

	return &Storages{
		ItemRepository: repository,
	}, nil
}

// Close releases every backend connection.
func (s *Storages) Close() error {
	return s.ItemRepository.Close()
}
