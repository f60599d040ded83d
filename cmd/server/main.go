// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package main

import (
	"context"
	"fmt"

	"github.com/Hariharan097/phishing-detection/internal/classifier"
	"github.com/Hariharan097/phishing-detection/internal/config"
	"github.com/Hariharan097/phishing-detection/internal/features"
	handlerhttp "github.com/Hariharan097/phishing-detection/internal/handler/http"
	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/server"
	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/session"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/internal/workers"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("phishing-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	forest, err := classifier.Load(cfg.Storage.Model.Path, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Model.Path).Msg("error loading classifier artifact")
	}

	encoder := features.NewEncoder(cfg.App.TrustedDomains)
	sessions := session.NewStore(cfg.App.SessionSignKey, cfg.App.SessionTTL, log)

	services := service.NewServices(service.Deps{
		Storages:   storages,
		Classifier: forest,
		Encoder:    encoder,
		App:        cfg.App,
		Admin:      cfg.Admin,
		Logger:     log,
	})

	if err := services.Auth.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	janitor := workers.NewSessionJanitor(sessions, cfg.Workers.SessionSweepInterval, log)
	workers.NewWorkers(janitor).Run(ctx)

	handler := handlerhttp.NewHandler(services, sessions, log)

	srv, err := server.NewServer(handler, cfg.Server, cancel, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
