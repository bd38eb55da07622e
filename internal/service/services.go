// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/internal/workers"
	"github.com/MKhiriev/go-scaffold-api/models"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, pool *workers.Pool, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, pool, logger)
	if err != nil {
		return nil, err
	}

	itemService := NewItemValidationService(cfg.Storage.DB.MaxListLimit).
		Wrap(NewItemService(storages.ItemRepository, logger))

	return &Services{
		AuthService:    authService,
		ItemService:    itemService,
		AppInfoService: NewAppInfoService(buildInfo, storages.ItemRepository, logger),
	}, nil
}
