// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/validators"
	"github.com/MKhiriev/go-scaffold-api/models"
)

// ItemValidationService rejects invalid input before it reaches the
// wrapped ItemService. Rejections wrap ErrInvalidDataProvided together with
// the *validators.ValidationError describing the fields.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(maxListLimit int) ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(maxListLimit),
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context, limit int) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, models.ListItemsRequest{Limit: limit}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListItems(ctx, limit)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, request)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id string) (models.Item, error) {
	if strings.TrimSpace(id) == "" {
		return models.Item{}, fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) Wrap(wrapper ItemService) ItemService {
	v.inner = wrapper
	return v
}
