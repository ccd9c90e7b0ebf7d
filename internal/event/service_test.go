package event_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
)

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass consumed events to the invalidate func", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())

		var got []event.CacheInvalidatedEvent
		svc := event.New(log.Discard(), bus, event.WithInvalidateFunc(func(_ context.Context, ev event.CacheInvalidatedEvent) {
			got = append(got, ev)
		}))
		cleanup, err := svc.Run(ctx)
		require.NoError(t, err)
		defer cleanup()

		want := event.CacheInvalidatedEvent{
			Entity:     event.EntityProduct,
			Action:     event.ActionDeleted,
			ID:         7,
			Tags:       []string{"Product:7", "ProductList", "CategoryList"},
			OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		payload, err := json.Marshal(want)
		require.NoError(t, err)

		require.NoError(t, bus.Produce(ctx, mq.ProduceMsg{
			Topic:   event.TopicCacheInvalidated,
			Payload: payload,
		}))

		require.Len(t, got, 1)
		assert.Equal(t, want, got[0])
		assert.Equal(t, "product:7", got[0].PartitionKey())
	})

	t.Run("Should skip malformed payloads", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())

		called := false
		svc := event.New(log.Discard(), bus, event.WithInvalidateFunc(func(context.Context, event.CacheInvalidatedEvent) {
			called = true
		}))
		cleanup, err := svc.Run(ctx)
		require.NoError(t, err)
		defer cleanup()

		require.NoError(t, bus.Produce(ctx, mq.ProduceMsg{
			Topic:   event.TopicCacheInvalidated,
			Payload: []byte("{"),
		}))
		assert.False(t, called)
	})

	t.Run("Should fail when the topic already has a handler", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())
		require.NoError(t, bus.RegisterHandler(event.TopicCacheInvalidated, func(context.Context, string, []byte) error {
			return nil
		}))

		_, err := event.New(log.Discard(), bus).Run(ctx)
		assert.Error(t, err)
	})
}
