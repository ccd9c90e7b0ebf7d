package mq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tuanvumaihuynh/product-inventory/pkg/outbox"
)

var (
	_ Producer = (*LocalBus)(nil)
	_ Consumer = (*LocalBus)(nil)
)

// LocalBus delivers produced messages to in-process handlers. It stands in
// for Kafka when no broker is configured. Messages for topics without a
// handler are logged and dropped.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	running  bool
	log      *slog.Logger
}

func NewLocalBus(logger *slog.Logger) *LocalBus {
	return &LocalBus{
		handlers: make(map[string]HandlerFunc),
		log:      logger,
	}
}

func (b *LocalBus) RegisterHandler(topic string, handler HandlerFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.handlers[topic]; exists {
		return fmt.Errorf("handler for topic %s already registered", topic)
	}

	b.handlers[topic] = handler
	return nil
}

func (b *LocalBus) Run(_ context.Context) (CleanupFunc, error) {
	b.mu.Lock()
	b.running = true
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
	}, nil
}

// Produce hands msg to the topic handler synchronously. Handler errors are
// logged, not returned, matching a broker that accepted the message.
func (b *LocalBus) Produce(ctx context.Context, msg ProduceMsg) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	fn, exists := b.handlers[msg.Topic]
	running := b.running
	b.mu.RUnlock()

	msgCtx := outbox.ExtractContextFromHeaders(ctx, msg.Headers)
	if !running || !exists {
		b.log.InfoContext(msgCtx, "no local consumer for message",
			slog.String("topic", msg.Topic),
			slog.String("payload", string(msg.Payload)),
		)
		return nil
	}

	if err := fn(msgCtx, msg.Topic, msg.Payload); err != nil {
		b.log.ErrorContext(msgCtx, "error handling message",
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)
	}
	return nil
}
