// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/internal/client"
	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("go-scaffold-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting client configs")
	}
	log = log.WithLevel(cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.ServerAddress, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, cfg.Token, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
