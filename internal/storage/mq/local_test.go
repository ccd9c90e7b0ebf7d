package mq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-inventory/pkg/correlationid"
)

func TestLocalBus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deliver to the registered handler with restored context", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())

		var (
			gotPayload string
			gotID      string
		)
		require.NoError(t, bus.RegisterHandler("t", func(ctx context.Context, topic string, payload []byte) error {
			gotPayload = string(payload)
			gotID, _ = correlationid.FromContext(ctx)
			return nil
		}))
		cleanup, err := bus.Run(ctx)
		require.NoError(t, err)
		defer cleanup()

		require.NoError(t, bus.Produce(ctx, mq.ProduceMsg{
			Topic:   "t",
			Headers: map[string]string{correlationid.Header: "abc"},
			Payload: []byte(`{"a":1}`),
		}))

		assert.Equal(t, `{"a":1}`, gotPayload)
		assert.Equal(t, "abc", gotID)
	})

	t.Run("Should reject duplicate handlers", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())
		noop := func(context.Context, string, []byte) error { return nil }

		require.NoError(t, bus.RegisterHandler("t", noop))
		assert.Error(t, bus.RegisterHandler("t", noop))
	})

	t.Run("Should swallow handler errors and drop unrouted messages", func(t *testing.T) {
		bus := mq.NewLocalBus(log.Discard())
		require.NoError(t, bus.RegisterHandler("t", func(context.Context, string, []byte) error {
			return errors.New("boom")
		}))
		_, err := bus.Run(ctx)
		require.NoError(t, err)

		assert.NoError(t, bus.Produce(ctx, mq.ProduceMsg{Topic: "t"}))
		assert.NoError(t, bus.Produce(ctx, mq.ProduceMsg{Topic: "other"}))
	})
}
