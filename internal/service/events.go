package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/product-inventory/internal/cachetag"
	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/pkg/outbox"
	"github.com/tuanvumaihuynh/product-inventory/pkg/tagcache"
)

// writeInvalidation records, in the caller's transaction, which cache tags a
// mutation invalidated.
func writeInvalidation(
	ctx context.Context,
	tx repository.Store,
	entity, action string,
	id int64,
	tags []tagcache.Tag,
) error {
	ev := event.CacheInvalidatedEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Tags:       cachetag.Strings(tags),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	partitionKey := ev.PartitionKey()
	if err := tx.OutboxMsgs().CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
		Topic:        event.TopicCacheInvalidated,
		Headers:      outbox.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: &partitionKey,
	}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}
