// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/handler"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/server"
	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/internal/workers"
	"github.com/MKhiriev/go-scaffold-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-scaffold-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.LogLevel)

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.ItemRepository.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("error preparing item schema")
	}

	pool := workers.NewPool(cfg.App.HashWorkers, log)
	background := workers.NewWorkers(pool)
	background.Run()
	defer background.Stop()

	services, err := service.NewServices(storages, pool, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
