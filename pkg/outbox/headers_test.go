package outbox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/product-inventory/pkg/correlationid"
	"github.com/tuanvumaihuynh/product-inventory/pkg/outbox"
)

func TestHeaders(t *testing.T) {
	t.Run("Should carry correlation id through record headers", func(t *testing.T) {
		ctx := correlationid.NewContext(context.Background(), "req-42")

		headers := outbox.BuildHeaders(ctx)
		assert.Equal(t, "req-42", headers[correlationid.Header])

		rec := &kgo.Record{Headers: outbox.RecordHeaders(headers)}
		restored := outbox.ExtractContextFromHeaders(context.Background(), outbox.HeadersFromRecord(rec))

		got, ok := correlationid.FromContext(restored)
		assert.True(t, ok)
		assert.Equal(t, "req-42", got)
	})

	t.Run("Should leave context untouched without headers", func(t *testing.T) {
		ctx := outbox.ExtractContextFromHeaders(context.Background(), map[string]string{})

		_, ok := correlationid.FromContext(ctx)
		assert.False(t, ok)
	})
}
