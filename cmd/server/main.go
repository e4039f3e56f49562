// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-invoice-tracker/internal/adapter"
	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/handler"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/metrics"
	"github.com/MKhiriev/go-invoice-tracker/internal/server"
	"github.com/MKhiriev/go-invoice-tracker/internal/service"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/workers"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("invoice-tracker").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerForMode("invoice-tracker", cfg.App.Environment)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailer, err := adapter.NewMailer(cfg.Adapter.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	m := metrics.New()

	services, err := service.NewServices(storages, mailer, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workers.NewWorkers(services.AuthService, cfg.Workers, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
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

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
