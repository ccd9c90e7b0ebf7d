package event

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

const TopicCacheInvalidated = "inventory.cache.invalidated"

const (
	EntityProduct  = "product"
	EntityCategory = "category"
)

const (
	ActionCreated          = "created"
	ActionUpdated          = "updated"
	ActionInventoryUpdated = "inventory_updated"
	ActionDeleted          = "deleted"
)

// CacheInvalidatedEvent announces a committed mutation and the cache tags
// that no longer hold.
type CacheInvalidatedEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Tags       []string  `json:"tags"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PartitionKey keeps the events of one entity ordered.
func (e CacheInvalidatedEvent) PartitionKey() string {
	return e.Entity + ":" + strconv.FormatInt(e.ID, 10)
}

func (s *Service) handleCacheInvalidatedEvent(ctx context.Context, ev CacheInvalidatedEvent) error {
	s.logger.InfoContext(ctx, "cache invalidated",
		slog.String("entity", ev.Entity),
		slog.String("action", ev.Action),
		slog.Int64("id", ev.ID),
		slog.Any("tags", ev.Tags),
	)

	if s.onInvalidate != nil {
		s.onInvalidate(ctx, ev)
	}
	return nil
}
