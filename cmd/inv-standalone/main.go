package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/http"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/relay"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/seed"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/db"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-inventory/internal/telemetry"
	"github.com/tuanvumaihuynh/product-inventory/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	Log      config.Log
	Store    config.Store
	Postgres config.Postgres
	HTTP     config.HTTP
	Relay    config.Relay
	Kafka    config.Kafka
	Otel     config.Otel
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.InfoContext(ctx, "store opened", slog.String("driver", cfg.Store.Driver.String()))

	if cfg.Store.Seed {
		if _, err := seed.Run(ctx, logger, store); err != nil {
			return fmt.Errorf("error seeding store: %w", err)
		}
	}

	producer, consumer, closeMQ, err := openMQ(ctx, cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer closeMQ()

	v, err := service.NewValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}
	productService := service.NewProductService(logger, store, v)
	categoryService := service.NewCategoryService(logger, store, v)

	interruptChan := cmdutil.InterruptChan()

	// The consumer registers its handler before the relay publishes anything.
	eventCleanup, err := event.New(logger, consumer).Run(ctx)
	if err != nil {
		return fmt.Errorf("error running event service: %w", err)
	}
	logger.InfoContext(ctx, "event service started")

	httpCleanup, err := http.New(cfg.HTTP, logger, productService, categoryService, store).Run(ctx)
	if err != nil {
		eventCleanup()
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	relayCleanup := relay.NewService(cfg.Relay, logger, store, producer).Run(ctx)
	logger.InfoContext(ctx, "relay service started")

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := httpCleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	logger.InfoContext(ctx, "relay service is shutting down")
	relayCleanup()
	logger.InfoContext(ctx, "relay service is stopped")

	logger.InfoContext(ctx, "event service is shutting down")
	eventCleanup()
	logger.InfoContext(ctx, "event service is stopped")

	return nil
}

func openStore(ctx context.Context, cfg Config) (repository.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating pgx pool: %w", err)
		}
		return repository.NewPostgresStore(db.NewClient(pgxPool)), pgxPool.Close, nil
	default:
		return repository.NewMemoryStore(), func() {}, nil
	}
}

// openMQ returns Kafka clients when brokers are configured and an in-process
// bus otherwise.
func openMQ(ctx context.Context, cfg config.Kafka, logger *slog.Logger) (mq.Producer, mq.Consumer, func(), error) {
	if !cfg.Enabled() {
		bus := mq.NewLocalBus(logger)
		return bus, bus, func() {}, nil
	}

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error creating kafka producer: %w", err)
	}

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg, logger)
	if err != nil {
		kafkaProducer.Close()
		return nil, nil, nil, fmt.Errorf("error creating kafka consumer: %w", err)
	}

	return kafkaProducer, kafkaConsumer, func() {
		kafkaConsumer.Close()
		kafkaProducer.Close()
	}, nil
}
