package repository

import (
	"context"

	"github.com/tuanvumaihuynh/product-inventory/internal/storage/db"
)

var _ Store = (*postgresStore)(nil)

type postgresStore struct {
	db            db.DB
	health        db.HealthChecker
	productRepo   productRepository
	categoryRepo  categoryRepository
	outboxMsgRepo outboxMsgRepository
}

// NewPostgresStore creates a store backed by the Postgres client.
func NewPostgresStore(client *db.Client) Store {
	return newPostgresStore(client, client)
}

func newPostgresStore(conn db.DB, health db.HealthChecker) *postgresStore {
	return &postgresStore{
		db:            conn,
		health:        health,
		productRepo:   productRepository{db: conn},
		categoryRepo:  categoryRepository{db: conn},
		outboxMsgRepo: outboxMsgRepository{db: conn},
	}
}

func (s *postgresStore) Products() ProductRepository {
	return s.productRepo
}

func (s *postgresStore) Categories() CategoryRepository {
	return s.categoryRepo
}

func (s *postgresStore) OutboxMsgs() OutboxMsgRepository {
	return s.outboxMsgRepo
}

func (s *postgresStore) WithTx(ctx context.Context, txFunc func(Store) error) error {
	return s.db.WithTx(ctx, func(tx db.DB) error {
		return txFunc(&postgresStore{
			db:            tx,
			health:        s.health,
			productRepo:   s.productRepo.WithDB(tx),
			categoryRepo:  s.categoryRepo.WithDB(tx),
			outboxMsgRepo: s.outboxMsgRepo.WithDB(tx),
		})
	})
}

func (s *postgresStore) WithReadTx(ctx context.Context, txFunc func(Store) error) error {
	return s.WithTx(ctx, txFunc)
}

func (s *postgresStore) LocksRows() bool {
	return true
}

func (s *postgresStore) IsHealthy(ctx context.Context) (bool, error) {
	return s.health.IsHealthy(ctx)
}
