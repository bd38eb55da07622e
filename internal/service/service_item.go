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

// itemService passes item operations to the repository. Input is expected
// to be validated already; see ItemValidationService.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, limit int) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("limit", limit).Msg("listing items ended with error")
		return nil, fmt.Errorf("listing items ended with error: %w", err)
	}

	return items, nil
}

func (s *itemService) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	item, err := s.itemRepository.CreateItem(ctx, request.ToItem())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", request.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("id", item.ID).Msg("item created")
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id string) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup ended with error: %w", err)
	}

	return item, nil
}
