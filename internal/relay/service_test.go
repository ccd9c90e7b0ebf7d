package relay_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/relay"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
)

type recordingProducer struct {
	mu      sync.Mutex
	topics  []string
	failFor string
}

func (p *recordingProducer) Produce(_ context.Context, msg mq.ProduceMsg) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.Topic == p.failFor {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, msg.Topic)
	return nil
}

func (p *recordingProducer) produced() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}

func seedOutbox(t *testing.T, store repository.Store, topics ...string) {
	t.Helper()

	for _, topic := range topics {
		require.NoError(t, store.OutboxMsgs().CreateOutboxMsg(context.Background(), repository.CreateOutboxMsgParams{
			Topic:   topic,
			Payload: []byte(`{}`),
		}))
	}
}

func TestService_RelayBatch(t *testing.T) {
	ctx := context.Background()
	cfg := config.Relay{BatchSize: 2, Interval: time.Hour}

	t.Run("Should publish in batches and mark messages processed", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "a", "b", "c")
		producer := &recordingProducer{}
		svc := relay.NewService(cfg, log.Discard(), store, producer)

		n, err := svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.ElementsMatch(t, []string{"a", "b"}, producer.produced())

		n, err = svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, producer.produced())
	})

	t.Run("Should not retry messages the producer rejected", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "bad")
		svc := relay.NewService(cfg, log.Discard(), store, &recordingProducer{failFor: "bad"})

		n, err := svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		left, err := store.OutboxMsgs().ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{BatchSize: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}

// rowLockingStore runs the memory store through the single-transaction path.
type rowLockingStore struct {
	repository.Store
}

func (rowLockingStore) LocksRows() bool { return true }

type funcProducer func(ctx context.Context, msg mq.ProduceMsg) error

func (f funcProducer) Produce(ctx context.Context, msg mq.ProduceMsg) error {
	return f(ctx, msg)
}

func TestService_RelayBatchStoreAccess(t *testing.T) {
	ctx := context.Background()
	cfg := config.Relay{BatchSize: 10, Interval: time.Hour}

	t.Run("Should keep the store usable while a publish is slow", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "a")

		producing := make(chan struct{})
		release := make(chan struct{})
		svc := relay.NewService(cfg, log.Discard(), store, funcProducer(func(context.Context, mq.ProduceMsg) error {
			close(producing)
			<-release
			return nil
		}))

		relayed := make(chan error, 1)
		go func() {
			_, err := svc.RelayBatch(ctx)
			relayed <- err
		}()
		<-producing

		wrote := make(chan error, 1)
		go func() {
			_, err := store.Categories().CreateCategory(ctx, model.ProductCategory{Name: "Books", IsActive: true})
			wrote <- err
		}()

		select {
		case err := <-wrote:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("store write blocked behind the relay")
		}

		categories, err := store.Categories().ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)

		close(release)
		require.NoError(t, <-relayed)

		left, err := store.OutboxMsgs().ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{BatchSize: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("Should let handlers write to the store during publish", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "a")

		svc := relay.NewService(cfg, log.Discard(), store, funcProducer(func(ctx context.Context, _ mq.ProduceMsg) error {
			_, err := store.Categories().CreateCategory(ctx, model.ProductCategory{Name: "From handler"})
			return err
		}))

		relayed := make(chan error, 1)
		go func() {
			_, err := svc.RelayBatch(ctx)
			relayed <- err
		}()

		select {
		case err := <-relayed:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("relay deadlocked on a handler writing to the store")
		}

		categories, err := store.Categories().ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})

	t.Run("Should relay in one transaction when the store locks rows", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "a", "b")
		producer := &recordingProducer{}
		svc := relay.NewService(cfg, log.Discard(), rowLockingStore{Store: store}, producer)

		n, err := svc.RelayBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.ElementsMatch(t, []string{"a", "b"}, producer.produced())

		left, err := store.OutboxMsgs().ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{BatchSize: 10})
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}

func TestService_Run(t *testing.T) {
	t.Run("Should relay on every tick until stopped", func(t *testing.T) {
		store := repository.NewMemoryStore()
		seedOutbox(t, store, "a")
		producer := &recordingProducer{}
		svc := relay.NewService(config.Relay{BatchSize: 10, Interval: 10 * time.Millisecond}, log.Discard(), store, producer)

		cleanup := svc.Run(context.Background())
		assert.Eventually(t, func() bool {
			return len(producer.produced()) == 1
		}, time.Second, 10*time.Millisecond)
		cleanup()
	})
}
