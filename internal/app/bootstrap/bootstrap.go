package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	projectservice "rawvault/contexts/event-ingestion/project-service"
	projectpostgres "rawvault/contexts/event-ingestion/project-service/adapters/postgres"
	raweventservice "rawvault/contexts/event-ingestion/rawevent-service"
	raweventpostgres "rawvault/contexts/event-ingestion/rawevent-service/adapters/postgres"
	"rawvault/internal/platform/config"
	"rawvault/internal/platform/db"
	"rawvault/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres *db.Postgres
	module   raweventservice.Module
	cfg      config.Config
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	rawEventsModule := raweventservice.NewModule(raweventservice.Dependencies{
		RawEvents:      raweventpostgres.NewRepository(pg.DB, logger),
		Clock:          raweventpostgres.SystemClock{},
		IDGenerator:    raweventpostgres.UUIDGenerator{},
		Retention:      cfg.RawEventRetention,
		RetentionBatch: cfg.RetentionSweepBatch,
		Logger:         logger,
	})

	projectsModule := projectservice.NewModule(projectservice.Dependencies{
		Projects:    projectpostgres.NewRepository(pg.DB, logger),
		Clock:       projectpostgres.SystemClock{},
		IDGenerator: projectpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(rawEventsModule, projectsModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() { _ = a.postgres.Close() }()
	return a.server.Start()
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	module := raweventservice.NewModule(raweventservice.Dependencies{
		RawEvents:      raweventpostgres.NewRepository(pg.DB, logger),
		Clock:          raweventpostgres.SystemClock{},
		IDGenerator:    raweventpostgres.UUIDGenerator{},
		Retention:      cfg.RawEventRetention,
		RetentionBatch: cfg.RetentionSweepBatch,
		Logger:         logger,
	})

	return &WorkerApp{
		postgres: pg,
		module:   module,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (a *WorkerApp) Run(ctx context.Context) error {
	defer func() { _ = a.postgres.Close() }()
	a.logger.Info("retention worker starting",
		"event", "retention_worker_starting",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"retention", a.cfg.RawEventRetention,
		"interval", a.cfg.RetentionSweepInterval,
	)
	return a.module.Sweeper.Run(ctx, a.cfg.RetentionSweepInterval)
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
