package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/memstore"
)

const (
	productsTable   = "products"
	categoriesTable = "product_categories"
	outboxTable     = "outbox_messages"

	skuIndex   = "sku"
	nameIndex  = "name"
	msgIDIndex = "msg_id"
)

var memTables = []*memdb.TableSchema{
	{
		Name: productsTable,
		Indexes: map[string]*memdb.IndexSchema{
			memstore.IDIndex: {Name: memstore.IDIndex, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
			skuIndex:         {Name: skuIndex, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Sku"}},
		},
	},
	{
		Name: categoriesTable,
		Indexes: map[string]*memdb.IndexSchema{
			memstore.IDIndex: {Name: memstore.IDIndex, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
			nameIndex:        {Name: nameIndex, Unique: true, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: "Name"}},
		},
	},
	{
		Name: outboxTable,
		Indexes: map[string]*memdb.IndexSchema{
			memstore.IDIndex: {Name: memstore.IDIndex, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "Seq"}},
			msgIDIndex:       {Name: msgIDIndex, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "MsgID"}},
		},
	},
}

var _ Store = (*memoryStore)(nil)

type memoryStore struct {
	client *memstore.Client
	// tx is set on stores handed to WithTx callbacks.
	tx *memstore.Txn
}

// NewMemoryStore creates a store that lives for the duration of the process.
func NewMemoryStore() Store {
	client, err := memstore.New(memTables...)
	if err != nil {
		panic(fmt.Sprintf("repository: invalid memory schema: %v", err))
	}

	return &memoryStore{client: client}
}

func (s *memoryStore) Products() ProductRepository {
	return memProductRepository{store: s}
}

func (s *memoryStore) Categories() CategoryRepository {
	return memCategoryRepository{store: s}
}

func (s *memoryStore) OutboxMsgs() OutboxMsgRepository {
	return memOutboxMsgRepository{store: s}
}

func (s *memoryStore) WithTx(ctx context.Context, txFunc func(Store) error) error {
	return s.write(ctx, func(tx *memstore.Txn) error {
		return txFunc(&memoryStore{client: s.client, tx: tx})
	})
}

func (s *memoryStore) WithReadTx(ctx context.Context, txFunc func(Store) error) error {
	return s.read(ctx, func(tx *memstore.Txn) error {
		return txFunc(&memoryStore{client: s.client, tx: tx})
	})
}

// LocksRows is false: a write transaction excludes every other writer.
func (s *memoryStore) LocksRows() bool {
	return false
}

func (s *memoryStore) IsHealthy(_ context.Context) (bool, error) {
	return true, nil
}

func (s *memoryStore) read(ctx context.Context, fn func(tx *memstore.Txn) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	return s.client.View(ctx, fn)
}

func (s *memoryStore) write(ctx context.Context, fn func(tx *memstore.Txn) error) error {
	if s.tx != nil {
		if !s.tx.Writable() {
			return memstore.ErrReadOnly
		}
		return fn(s.tx)
	}
	return s.client.Update(ctx, fn)
}

func productKey(p model.Product) int64          { return p.ID }
func categoryKey(c model.ProductCategory) int64 { return c.ID }
func outboxKey(m outboxRow) int64               { return m.Seq }

type memProductRepository struct {
	store *memoryStore
}

func (r memProductRepository) CreateProduct(ctx context.Context, product model.Product) (int64, error) {
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		if err := checkCategoryRef(tx, product.CategoryID); err != nil {
			return err
		}

		id, err := tx.NextID(productsTable)
		if err != nil {
			return err
		}
		product.ID = id
		return memstore.Put(tx, productsTable, product)
	})
	if err != nil {
		return 0, err
	}

	return product.ID, nil
}

func (r memProductRepository) UpdateProduct(ctx context.Context, product model.Product) (bool, error) {
	var found bool
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		var err error
		if _, found, err = getProduct(tx, product.ID); err != nil || !found {
			return err
		}
		if err := checkCategoryRef(tx, product.CategoryID); err != nil {
			return err
		}
		return memstore.Put(tx, productsTable, product)
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r memProductRepository) UpdateProductQuantity(ctx context.Context, id int64, quantity int) (bool, error) {
	var found bool
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		var (
			product model.Product
			err     error
		)
		if product, found, err = getProduct(tx, id); err != nil || !found {
			return err
		}
		product.Quantity = quantity
		return memstore.Put(tx, productsTable, product)
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r memProductRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		var (
			product model.Product
			err     error
		)
		if product, found, err = getProduct(tx, id); err != nil || !found {
			return err
		}
		return memstore.Delete(tx, productsTable, product)
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r memProductRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	var (
		product model.Product
		ok      bool
	)
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		product, ok, err = getProduct(tx, id)
		return err
	})
	if err != nil {
		return model.Product{}, err
	}
	if !ok {
		return model.Product{}, ErrNotFound
	}

	return product, nil
}

func (r memProductRepository) GetProductBySku(ctx context.Context, sku string) (model.Product, error) {
	var products []model.Product
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		products, err = memstore.Select(tx, productsTable, skuIndex, productKey, nil, sku)
		return err
	})
	if err != nil {
		return model.Product{}, err
	}
	if len(products) == 0 {
		return model.Product{}, ErrNotFound
	}

	return products[0], nil
}

func (r memProductRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		products, err = memstore.Select(tx, productsTable, memstore.IDIndex, productKey, filter.match)
		return err
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r memProductRepository) CountProductsByCategory(ctx context.Context) (map[int64]int, error) {
	var products []model.Product
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		products, err = memstore.Select(tx, productsTable, memstore.IDIndex, productKey, func(p model.Product) bool {
			return p.CategoryID != nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int)
	for _, p := range products {
		counts[*p.CategoryID]++
	}
	return counts, nil
}

type memCategoryRepository struct {
	store *memoryStore
}

func (r memCategoryRepository) CreateCategory(ctx context.Context, category model.ProductCategory) (int64, error) {
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		if err := checkCategoryName(tx, category); err != nil {
			return err
		}

		id, err := tx.NextID(categoriesTable)
		if err != nil {
			return err
		}
		category.ID = id
		return memstore.Put(tx, categoriesTable, category)
	})
	if err != nil {
		return 0, err
	}

	return category.ID, nil
}

func (r memCategoryRepository) UpdateCategory(ctx context.Context, category model.ProductCategory) (bool, error) {
	var found bool
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		var err error
		if _, found, err = getCategory(tx, category.ID); err != nil || !found {
			return err
		}
		if err := checkCategoryName(tx, category); err != nil {
			return err
		}
		return memstore.Put(tx, categoriesTable, category)
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r memCategoryRepository) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := r.store.write(ctx, func(tx *memstore.Txn) error {
		var (
			category model.ProductCategory
			err      error
		)
		if category, found, err = getCategory(tx, id); err != nil || !found {
			return err
		}
		if err := memstore.Delete(tx, categoriesTable, category); err != nil {
			return err
		}

		products, err := memstore.Select(tx, productsTable, memstore.IDIndex, productKey, func(p model.Product) bool {
			return p.InCategory(id)
		})
		if err != nil {
			return err
		}
		for _, p := range products {
			p.CategoryID = nil
			if err := memstore.Put(tx, productsTable, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r memCategoryRepository) GetCategory(ctx context.Context, id int64) (model.ProductCategory, error) {
	var (
		category model.ProductCategory
		ok       bool
	)
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		category, ok, err = getCategory(tx, id)
		return err
	})
	if err != nil {
		return model.ProductCategory{}, err
	}
	if !ok {
		return model.ProductCategory{}, ErrNotFound
	}

	return category, nil
}

func (r memCategoryRepository) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		categories, err = memstore.Select(tx, categoriesTable, memstore.IDIndex, categoryKey, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

type outboxRow struct {
	Seq          int64
	MsgID        string
	ID           uuid.UUID
	Topic        string
	Headers      map[string]string
	Payload      []byte
	PartitionKey *string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
	Error        *string
}

type memOutboxMsgRepository struct {
	store *memoryStore
}

func (r memOutboxMsgRepository) CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	return r.store.write(ctx, func(tx *memstore.Txn) error {
		seq, err := tx.NextID(outboxTable)
		if err != nil {
			return err
		}

		return memstore.Put(tx, outboxTable, outboxRow{
			Seq:          seq,
			MsgID:        id.String(),
			ID:           id,
			Topic:        params.Topic,
			Headers:      params.Headers,
			Payload:      params.Payload,
			PartitionKey: params.PartitionKey,
			CreatedAt:    time.Now().UTC(),
		})
	})
}

func (r memOutboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]ListUnprocessedOutboxMsgsResult, error) {
	var rows []outboxRow
	err := r.store.read(ctx, func(tx *memstore.Txn) error {
		var err error
		rows, err = memstore.Select(tx, outboxTable, memstore.IDIndex, outboxKey, func(m outboxRow) bool {
			return m.ProcessedAt == nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if params.BatchSize > 0 && len(rows) > int(params.BatchSize) {
		rows = rows[:params.BatchSize]
	}

	results := make([]ListUnprocessedOutboxMsgsResult, 0, len(rows))
	for _, m := range rows {
		results = append(results, ListUnprocessedOutboxMsgsResult{
			ID:           m.ID,
			Topic:        m.Topic,
			Headers:      m.Headers,
			Payload:      m.Payload,
			PartitionKey: m.PartitionKey,
		})
	}

	return results, nil
}

// BulkUpdateOutboxMsgs drops delivered messages and keeps failed ones with
// their error for inspection.
func (r memOutboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error {
	if len(params.Items) == 0 {
		return nil
	}

	return r.store.write(ctx, func(tx *memstore.Txn) error {
		now := time.Now().UTC()

		for _, item := range params.Items {
			row, ok, err := memstore.First[outboxRow](tx, outboxTable, msgIDIndex, item.ID.String())
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			if item.Error == nil {
				if err := memstore.Delete(tx, outboxTable, row); err != nil {
					return err
				}
				continue
			}

			row.ProcessedAt = &now
			row.Error = item.Error
			if err := memstore.Put(tx, outboxTable, row); err != nil {
				return err
			}
		}
		return nil
	})
}

func getProduct(tx *memstore.Txn, id int64) (model.Product, bool, error) {
	return memstore.First[model.Product](tx, productsTable, memstore.IDIndex, id)
}

func getCategory(tx *memstore.Txn, id int64) (model.ProductCategory, bool, error) {
	return memstore.First[model.ProductCategory](tx, categoriesTable, memstore.IDIndex, id)
}

func checkCategoryRef(tx *memstore.Txn, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	_, ok, err := getCategory(tx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForeignKey
	}
	return nil
}

// checkCategoryName enforces the unique name index, which go-memdb only uses
// for lookups.
func checkCategoryName(tx *memstore.Txn, category model.ProductCategory) error {
	other, ok, err := memstore.First[model.ProductCategory](tx, categoriesTable, nameIndex, category.Name)
	if err != nil {
		return err
	}
	if ok && other.ID != category.ID {
		return fmt.Errorf("%w: category name %q", ErrDuplicate, category.Name)
	}
	return nil
}
