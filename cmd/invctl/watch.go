package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		kafka     config.Kafka
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print low-stock alerts again whenever the API invalidates them",
		Long: "Subscribes to the cache invalidation topic on Kafka. Each event drops the\n" +
			"cached responses it names, and the report is printed again when the\n" +
			"low-stock list was among them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("kafka") {
				env, err := config.New[config.Kafka]()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				kafka.Addresses = env.Addresses
			}
			if !kafka.Enabled() {
				return errors.New("watch needs Kafka brokers: set --kafka or KAFKA_ADDRESSES")
			}
			if kafka.Group == "" {
				kafka.Group = "invctl-watch-" + uuid.NewString()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := log.New(config.Log{Level: slog.LevelWarn, Format: config.LogFormatText}, cmd.ErrOrStderr())
			consumer, err := mq.NewKafkaConsumer(ctx, kafka, logger)
			if err != nil {
				return err
			}
			defer consumer.Close()

			return a.watchLowStock(ctx, logger, consumer, threshold)
		},
	}
	cmd.Flags().StringSliceVar(&kafka.Addresses, "kafka", nil, "Kafka broker addresses (KAFKA_ADDRESSES)")
	cmd.Flags().StringVar(&kafka.Group, "group", "", "consumer group, unique per watcher by default")
	cmd.Flags().StringVar(&kafka.ClientID, "client-id", "invctl", "Kafka client id")
	cmd.Flags().IntVar(&threshold, "threshold", service.DefaultLowStockThreshold, "quantity at or below which a product is low")
	return cmd
}

// watchLowStock prints the low-stock report and prints it again each time an
// invalidation event drops cached responses, until ctx is done.
func (a *app) watchLowStock(ctx context.Context, logger *slog.Logger, consumer mq.Consumer, threshold int) error {
	refresh := make(chan struct{}, 1)
	events := event.New(logger, consumer, event.WithInvalidateFunc(func(_ context.Context, ev event.CacheInvalidatedEvent) {
		if a.client.InvalidateTags(ev.Tags...) == 0 {
			return
		}
		select {
		case refresh <- struct{}{}:
		default:
		}
	}))

	cleanup, err := events.Run(ctx)
	if err != nil {
		return fmt.Errorf("run event service: %w", err)
	}
	defer cleanup()

	for {
		alerts, err := a.client.ListLowStock(ctx, threshold)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := a.printLowStock(alerts); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-refresh:
		}
	}
}
