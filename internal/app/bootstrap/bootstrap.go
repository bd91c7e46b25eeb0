package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	contentledger "creatorpass/contexts/creator-economy/content-ledger"
	ledgerpostgres "creatorpass/contexts/creator-economy/content-ledger/adapters/postgres"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
	creatorpayouts "creatorpass/contexts/finance-core/creator-payouts"
	"creatorpass/internal/platform/config"
	"creatorpass/internal/platform/db"
	"creatorpass/internal/platform/httpserver"
	"creatorpass/internal/platform/messaging"
)

// API bundles everything a process needs to serve requests and shut down
// cleanly.
type API struct {
	Server *httpserver.Server
	Logger *slog.Logger

	postgres *db.Postgres
	kafka    *messaging.KafkaPublisher
}

// BuildAPI assembles the full service: config, logging, storage, messaging
// and both bounded contexts behind one HTTP server. POSTGRES_DSN selects the
// durable repository, KAFKA_BROKERS selects the external publisher; absent
// either, the process runs self-contained on in-memory adapters and the
// in-process bus.
func BuildAPI() (*API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		"service", cfg.ServiceName,
		"process", "api",
	)
	slog.SetDefault(logger)

	api := &API{Logger: logger}

	var publisher ports.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := messaging.NewKafkaPublisher(cfg.KafkaBrokers, logger)
		if err != nil {
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		api.kafka = kafka
		publisher = kafka
	} else {
		publisher = messaging.NewBus(logger)
	}

	payouts := creatorpayouts.NewInMemoryModule(logger)

	var ledger contentledger.Module
	if cfg.PostgresDSN != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			api.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		api.postgres = pg

		if err := pg.RunMigrations(); err != nil {
			api.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		repo := ledgerpostgres.NewRepository(pg.DB, logger)
		ledger = contentledger.NewModule(contentledger.Dependencies{
			Contents:       repo,
			Subscriptions:  repo,
			Idempotency:    repo,
			Payments:       payouts.Service,
			Events:         publisher,
			Clock:          ledgerpostgres.SystemClock{},
			IdempotencyTTL: 7 * 24 * time.Hour,
			Logger:         logger,
		})
		logger.Info("content ledger on postgres",
			"event", "bootstrap_storage_selected",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"storage", "postgres",
		)
	} else {
		ledger = contentledger.NewInMemoryModule(payouts.Service, publisher, logger)
		logger.Info("content ledger on in-memory store",
			"event", "bootstrap_storage_selected",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"storage", "memory",
		)
	}

	api.Server = httpserver.New(ledger, payouts, logger, ":"+cfg.HTTPPort)
	return api, nil
}

// Close releases external resources. Safe to call on a partially built API.
func (a *API) Close() {
	if a == nil {
		return
	}
	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			a.Logger.Warn("kafka close failed",
				"event", "bootstrap_kafka_close_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}
	if a.postgres != nil {
		if err := a.postgres.Close(); err != nil {
			a.Logger.Warn("postgres close failed",
				"event", "bootstrap_postgres_close_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}
}
