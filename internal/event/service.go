package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
)

// InvalidateFunc is called for every consumed invalidation event.
type InvalidateFunc func(ctx context.Context, ev CacheInvalidatedEvent)

// Service is the event service.
type Service struct {
	logger       *slog.Logger
	mqConsumer   mq.Consumer
	onInvalidate InvalidateFunc
}

type Option func(*Service)

// WithInvalidateFunc hooks a callback into event handling, e.g. to drop
// entries from a local cache.
func WithInvalidateFunc(fn InvalidateFunc) Option {
	return func(s *Service) {
		s.onInvalidate = fn
	}
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	opts ...Option,
) *Service {
	s := &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicCacheInvalidated,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev CacheInvalidatedEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal cache invalidated event: %w", err)
			}

			if err := s.handleCacheInvalidatedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle cache invalidated event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register cache invalidated event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
