package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

type fixture struct {
	store      repository.Store
	products   service.ProductService
	categories service.CategoryService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	v, err := service.NewValidator()
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	return fixture{
		store:      store,
		products:   service.NewProductService(log.Discard(), store, v),
		categories: service.NewCategoryService(log.Discard(), store, v),
	}
}

func (f fixture) createCategory(t *testing.T, name string) int64 {
	t.Helper()

	id, err := f.categories.CreateCategory(context.Background(), service.ProductCategoryParams{
		Name:     name,
		IsActive: ptr.New(true),
	})
	require.NoError(t, err)
	return id
}

func (f fixture) createProduct(t *testing.T, params service.ProductParams) int64 {
	t.Helper()

	id, err := f.products.CreateProduct(context.Background(), params)
	require.NoError(t, err)
	return id
}

// events drains the outbox and returns the invalidation events in order.
func (f fixture) events(t *testing.T) []event.CacheInvalidatedEvent {
	t.Helper()
	ctx := context.Background()

	msgs, err := f.store.OutboxMsgs().ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{BatchSize: 1000})
	require.NoError(t, err)

	events := make([]event.CacheInvalidatedEvent, 0, len(msgs))
	items := make([]repository.BulkUpdateOutboxMsgsItem, 0, len(msgs))
	for _, msg := range msgs {
		require.Equal(t, event.TopicCacheInvalidated, msg.Topic)

		var ev event.CacheInvalidatedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &ev))
		events = append(events, ev)
		items = append(items, repository.BulkUpdateOutboxMsgsItem{ID: msg.ID})
	}

	require.NoError(t, f.store.OutboxMsgs().BulkUpdateOutboxMsgs(ctx, repository.BulkUpdateOutboxMsgsParams{Items: items}))
	return events
}

func validProduct() service.ProductParams {
	return service.ProductParams{
		Name:     "Wireless Mouse",
		Sku:      "WM-001",
		Quantity: 25,
		Price:    decimal.RequireFromString("19.99"),
		Status:   model.ProductStatusInStock,
	}
}
