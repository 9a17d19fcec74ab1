// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"strings"
	_ "time/tzdata"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/handler"
	"github.com/MKhiriev/access-gate/internal/handler/http"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/MKhiriev/access-gate/internal/server"
	"github.com/MKhiriev/access-gate/internal/service"
	"github.com/MKhiriev/access-gate/internal/store"
	"github.com/MKhiriev/access-gate/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("access-gate", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("access-gate", cfg.App.LogLevel)

	db, err := store.NewConnectDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, *cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(http.Dependencies{
		Services: services,
		Health:   db,
		Metrics:  collector,
		Gatherer: registry,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewAuditWriter(services.AttemptQueue, repositories.LoginAttemptRepository, collector, log.GetChildLogger()),
		workers.NewSessionSweeperWorker(services.SessionManager, cfg.Workers.SessionSweepInterval, collector, log.GetChildLogger()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	background.Run(ctx)

	// the queue is closed only after the listener has drained, so no login
	// can enqueue into a closed queue while the audit writer finishes
	srv.RegisterOnShutdown(func() {
		cancel()
		services.AttemptQueue.Close()
		background.Wait()
		log.Info().Msg("background workers stopped")
	})

	logBanner(log, cfg)
	srv.RunServer()
}

func logBanner(log *logger.Logger, cfg *config.StructuredConfig) {
	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("access gate listening")
	log.Info().Str("dialect", dsnScheme(cfg.Storage.DB.DSN)).Msg("store configured")
	log.Info().Strs("allowed_ips", cfg.App.AllowedIPs).Msg("allowed client addresses")
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Int("start_hour", cfg.App.WindowStartHour).
		Int("end_hour", cfg.App.WindowEndHour).
		Str("check", cfg.App.WindowCheck).
		Msg("access window: monday to friday")
	log.Info().
		Str("device_policy", cfg.App.DevicePolicy).
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("session policy")
}

// dsnScheme returns the DSN scheme so credentials never reach the log.
func dsnScheme(dsn string) string {
	scheme, _, found := strings.Cut(dsn, ":")
	if !found {
		return "unknown"
	}
	return scheme
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
