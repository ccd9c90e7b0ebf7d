package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
)

var (
	// ErrNotFound is returned by single-row lookups that match nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write breaks a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey is returned when a write references a missing row.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// Store groups the repositories that share one transactional boundary.
type Store interface {
	Products() ProductRepository
	Categories() CategoryRepository
	OutboxMsgs() OutboxMsgRepository

	// WithTx runs txFunc against a store bound to a new transaction. The
	// transaction commits when txFunc returns nil. Nested calls join the
	// outer transaction.
	WithTx(ctx context.Context, txFunc func(Store) error) error
	// WithReadTx is WithTx for callbacks that only read.
	WithReadTx(ctx context.Context, txFunc func(Store) error) error
	// LocksRows reports whether a transaction locks only the rows it reads
	// with FOR UPDATE, so concurrent work can proceed while it stays open.
	LocksRows() bool

	IsHealthy(ctx context.Context) (bool, error)
}

// ProductFilter narrows ListProducts. Nil fields do not filter.
type ProductFilter struct {
	Status     *model.ProductStatus
	CategoryID *int64
}

func (f ProductFilter) match(p model.Product) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.CategoryID != nil && !p.InCategory(*f.CategoryID) {
		return false
	}
	return true
}

type ProductRepository interface {
	// CreateProduct stores product, ignoring its ID, and returns the new id.
	CreateProduct(ctx context.Context, product model.Product) (int64, error)
	// UpdateProduct overwrites every mutable field. It reports whether the
	// product existed.
	UpdateProduct(ctx context.Context, product model.Product) (bool, error)
	UpdateProductQuantity(ctx context.Context, id int64, quantity int) (bool, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	GetProduct(ctx context.Context, id int64) (model.Product, error)
	GetProductBySku(ctx context.Context, sku string) (model.Product, error)
	// ListProducts returns matching products in ascending id order.
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	// CountProductsByCategory maps category id to its number of products.
	CountProductsByCategory(ctx context.Context) (map[int64]int, error)
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category model.ProductCategory) (int64, error)
	UpdateCategory(ctx context.Context, category model.ProductCategory) (bool, error)
	// DeleteCategory removes the category and clears the category reference
	// of its products. It reports whether the category existed.
	DeleteCategory(ctx context.Context, id int64) (bool, error)

	GetCategory(ctx context.Context, id int64) (model.ProductCategory, error)
	// ListCategories returns every category in ascending id order.
	ListCategories(ctx context.Context) ([]model.ProductCategory, error)
}

type CreateOutboxMsgParams struct {
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

type ListUnprocessedOutboxMsgsParams struct {
	BatchSize int32
}

type ListUnprocessedOutboxMsgsResult struct {
	ID           uuid.UUID
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

type BulkUpdateOutboxMsgsItem struct {
	ID    uuid.UUID
	Error *string
}

type BulkUpdateOutboxMsgsParams struct {
	Items []BulkUpdateOutboxMsgsItem
}

type OutboxMsgRepository interface {
	CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error
	ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]ListUnprocessedOutboxMsgsResult, error)
	BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error
}
