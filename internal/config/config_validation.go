// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/go-scaffold-api/models"
)

// Default values applied to every field left empty after all sources merged.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultDSN              = "sqlite://data.db"
	DefaultMaxOpenConns     = 10
	DefaultOperationTimeout = 5 * time.Second
	DefaultListLimit        = 100
	DefaultMaxListLimit     = 1000
	DefaultTokenIssuer      = "go-scaffold-api"
	DefaultTokenDuration    = time.Hour
	DefaultPrincipalName    = "demo"
	DefaultHashAlgorithm    = string(models.HashBcrypt)
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.OperationTimeout == 0 {
		cfg.Storage.DB.OperationTimeout = DefaultOperationTimeout
	}
	if cfg.Storage.DB.ListLimit == 0 {
		cfg.Storage.DB.ListLimit = DefaultListLimit
	}
	if cfg.Storage.DB.MaxListLimit == 0 {
		cfg.Storage.DB.MaxListLimit = max(DefaultMaxListLimit, cfg.Storage.DB.ListLimit)
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Principal.Name == "" {
		cfg.App.Principal.Name = DefaultPrincipalName
	}
	if cfg.App.Principal.HashAlgorithm == "" {
		cfg.App.Principal.HashAlgorithm = DefaultHashAlgorithm
	}
	if cfg.App.HashWorkers == 0 {
		cfg.App.HashWorkers = runtime.NumCPU()
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// ErrInvalidAppConfigs, ErrInvalidStorageConfigs or ErrInvalidServerConfigs.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.Principal.Hash == "" {
		return fmt.Errorf("%w: principal hash is empty", ErrInvalidAppConfigs)
	}
	if _, ok := models.ParseHashAlgorithm(cfg.App.Principal.HashAlgorithm); !ok {
		return fmt.Errorf("%w: unknown hash algorithm %q", ErrInvalidAppConfigs, cfg.App.Principal.HashAlgorithm)
	}
	if cfg.App.HashWorkers < 0 {
		return fmt.Errorf("%w: hash workers must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open conns must be positive", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.OperationTimeout < 0 {
		return fmt.Errorf("%w: operation timeout must be positive", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.ListLimit < 0 || cfg.Storage.DB.MaxListLimit < cfg.Storage.DB.ListLimit {
		return fmt.Errorf("%w: list limit must be in range 1..%d", ErrInvalidStorageConfigs, cfg.Storage.DB.MaxListLimit)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
