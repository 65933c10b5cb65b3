package main

import (
	"context"
	"fmt"

	"github.com/raulshma/ever-life-vault-sub006/internal/adapter"
	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/handler"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/server"
	"github.com/raulshma/ever-life-vault-sub006/internal/service"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/internal/workers"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("vaultd", cfg.App.LogFile)
	}

	// the config carries the token sign key and the row store API key,
	// so only the non-secret parts are logged
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("rest_base_url", cfg.Storage.Rest.BaseURL).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	if cfg.App.Version == "" && buildInfo.BuildVersion() != "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := buildStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	registry := service.NewVaultRegistry(storages, cfg.App, log)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workers.NewWorkers(workersCtx, storages, cfg.Workers, log).Run()

	handlers, err := handler.NewHandlers(registry, cfg.App, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// the transports are down; stop background sweeps and wipe every
	// session key still held in memory
	stopWorkers()
	registry.Close(ctx)
	log.Info().Msg("vaultd stopped")
}

// buildStorages selects the row store backend: the remote REST store when
// a base URL is configured, the in-process store for the "memory" driver,
// otherwise a direct database connection with migrations applied.
func buildStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*store.Storages, error) {
	if cfg.Storage.Rest.BaseURL != "" {
		return adapter.NewRestStorages(cfg.Storage.Rest, log)
	}

	if cfg.Storage.DB.Driver == "memory" {
		return store.NewMemoryStorages(), nil
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return store.NewStorages(db, log), nil
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
