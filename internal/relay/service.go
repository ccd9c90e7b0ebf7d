package relay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

// Service moves committed outbox messages to the message broker.
type Service struct {
	cfg        config.Relay
	logger     *slog.Logger
	store      repository.Store
	mqProducer mq.Producer

	stopChan chan struct{}
}

func NewService(
	cfg config.Relay,
	logger *slog.Logger,
	store repository.Store,
	mqProducer mq.Producer,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     logger.With(slog.String("service", "relay")),
		store:      store,
		mqProducer: mqProducer,
		stopChan:   make(chan struct{}),
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		close(s.stopChan)
		select {
		case <-stoppedChan:
		case <-time.After(5 * time.Second):
			cancel()
			<-stoppedChan
		}
		cancel()
	}
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			if _, err := s.RelayBatch(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error relaying outbox msgs", slog.Any("error", err))
			}
		}
	}
}

// RelayBatch publishes one batch of unprocessed messages and marks them
// processed. Messages the producer rejects are marked with the error. It
// returns how many messages were attempted.
//
// When the store locks rows, listing, publishing and marking share one
// transaction so concurrent relays skip each other's batch. Otherwise the
// batch is listed in a read transaction and marked in a short write
// transaction, and publishing runs with no transaction open.
func (s *Service) RelayBatch(ctx context.Context) (int, error) {
	if s.store.LocksRows() {
		var attempted int
		err := s.store.WithTx(ctx, func(tx repository.Store) error {
			outboxMsgs, err := s.listBatch(ctx, tx)
			if err != nil || len(outboxMsgs) == 0 {
				return err
			}
			attempted = len(outboxMsgs)

			return s.markBatch(ctx, tx, s.publish(ctx, outboxMsgs))
		})
		if err != nil {
			return 0, fmt.Errorf("store with tx: %w", err)
		}
		return attempted, nil
	}

	var outboxMsgs []repository.ListUnprocessedOutboxMsgsResult
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		var err error
		outboxMsgs, err = s.listBatch(ctx, tx)
		return err
	}); err != nil {
		return 0, fmt.Errorf("store with read tx: %w", err)
	}
	if len(outboxMsgs) == 0 {
		return 0, nil
	}

	items := s.publish(ctx, outboxMsgs)
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		return s.markBatch(ctx, tx, items)
	}); err != nil {
		return 0, fmt.Errorf("store with tx: %w", err)
	}

	return len(outboxMsgs), nil
}

func (s *Service) listBatch(ctx context.Context, tx repository.Store) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	outboxMsgs, err := tx.OutboxMsgs().ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{
		//nolint:gosec
		BatchSize: int32(s.cfg.BatchSize),
	})
	if err != nil {
		return nil, fmt.Errorf("list unprocessed outbox msgs: %w", err)
	}
	return outboxMsgs, nil
}

func (s *Service) markBatch(ctx context.Context, tx repository.Store, items []repository.BulkUpdateOutboxMsgsItem) error {
	if err := tx.OutboxMsgs().BulkUpdateOutboxMsgs(ctx, repository.BulkUpdateOutboxMsgsParams{
		Items: items,
	}); err != nil {
		return fmt.Errorf("bulk update outbox msgs: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, outboxMsgs []repository.ListUnprocessedOutboxMsgsResult) []repository.BulkUpdateOutboxMsgsItem {
	s.logger.DebugContext(ctx, "relaying outbox msgs", slog.Int("count", len(outboxMsgs)))

	items := make([]repository.BulkUpdateOutboxMsgsItem, 0, len(outboxMsgs))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, msg := range outboxMsgs {
		wg.Go(func() {
			item := repository.BulkUpdateOutboxMsgsItem{ID: msg.ID}

			produceCtx, cancel := s.produceContext(ctx)
			defer cancel()

			if err := s.mqProducer.Produce(produceCtx, mq.ProduceMsg{
				Topic:        msg.Topic,
				Headers:      msg.Headers,
				Payload:      msg.Payload,
				PartitionKey: msg.PartitionKey,
			}); err != nil {
				s.logger.ErrorContext(ctx,
					"error producing message",
					slog.String("outbox_msg_id", msg.ID.String()),
					slog.String("topic", msg.Topic),
					slog.Any("error", err),
				)
				item.Error = ptr.New(err.Error())
			}

			mu.Lock()
			items = append(items, item)
			mu.Unlock()
		})
	}

	wg.Wait()
	return items
}

func (s *Service) produceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.ProduceTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.ProduceTimeout)
}
