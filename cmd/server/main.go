// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/handler"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/server"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx := context.Background()
	log := logger.NewLogger("go-ask-me")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("postgres", store.IsPostgresDSN(cfg.Storage.DB.DSN)).
		Dur("session_duration", cfg.App.SessionDuration).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.SettingsService.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping settings")
	}
	if _, err = services.AdminService.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
