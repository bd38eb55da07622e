// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/models"
)

type appInfoService struct {
	buildInfo      models.AppBuildInfo
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, itemRepository store.ItemRepository, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo:      buildInfo,
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// Ready pings the item backend.
func (s *appInfoService) Ready(ctx context.Context) error {
	if err := s.itemRepository.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ready").Msg("backend ping failed")
		return fmt.Errorf("%w: %w", ErrBackendNotReady, err)
	}
	return nil
}
