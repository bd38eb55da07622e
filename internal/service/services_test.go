// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/crypto"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/mock"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_WiresValidatedItemService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockItemRepository(ctrl)
	cfg := config.StructuredConfig{
		App:     newTestAuthConfig(models.HashSHA256, utils.HashString(testSecret)),
		Storage: config.Storage{DB: config.DB{MaxListLimit: 10}},
	}

	services, err := NewServices(&store.Storages{ItemRepository: repo}, newTestPool(t), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	// limit above MaxListLimit is rejected before the repository
	_, err = services.ItemService.ListItems(context.Background(), 11)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = services.AuthService.Authenticate(context.Background(), testPrincipal, testSecret)
	assert.NoError(t, err)
}

func TestNewServices_UnknownAlgorithm(t *testing.T) {
	cfg := config.StructuredConfig{App: newTestAuthConfig("argon2", "x")}

	_, err := NewServices(&store.Storages{}, newTestPool(t), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, crypto.ErrUnknownHashAlgorithm)
}
