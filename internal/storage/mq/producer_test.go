package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	t.Run("Should key the record by partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{
			Topic:        "inventory.cache.invalidated",
			Headers:      map[string]string{"traceparent": "00-abc"},
			Payload:      []byte(`{"entity":"product"}`),
			PartitionKey: ptr.New("product:7"),
		})

		assert.Equal(t, "inventory.cache.invalidated", rec.Topic)
		assert.Equal(t, []byte("product:7"), rec.Key)
		assert.Equal(t, []byte(`{"entity":"product"}`), rec.Value)
		if assert.Len(t, rec.Headers, 1) {
			assert.Equal(t, "traceparent", rec.Headers[0].Key)
			assert.Equal(t, []byte("00-abc"), rec.Headers[0].Value)
		}
	})

	t.Run("Should leave the key empty without a partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "t", Payload: []byte("{}")})

		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}
