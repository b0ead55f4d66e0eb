package main

import (
	"context"
	"os"

	"github.com/MKhiriev/chronos/internal/adapter"
	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/handler"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/internal/server"
	"github.com/MKhiriev/chronos/internal/service"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/internal/workers"
	"github.com/MKhiriev/chronos/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("chronos-server")
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		applied, err := db.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Ints64("versions", applied).Msg("migrations applied")
	}

	limiter, closeLimiter, err := ratelimit.NewLimiter(ctx, cfg.Storage.Redis, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	defer closeLimiter()

	deliverer, err := adapter.NewOTPDeliverer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating otp deliverer")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, deliverer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(
			workers.NewOTPCleanupWorker(storages.OTPRepository, cfg.Auth.OTPCleanupInterval, log),
		).Run(workersCtx)
		close(workersDone)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stopWorkers()
	<-workersDone
}
