package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/db"
)

const productColumns = `id, name, sku, quantity, price, status, description, category_id`

type productRepository struct {
	db db.DB
}

func (r productRepository) WithDB(db db.DB) productRepository {
	return productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, sku, quantity, price, status, description, category_id)
		VALUES (@name, @sku, @quantity, @price, @status, @description, @category_id)
		RETURNING id
	`, productArgs(product)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", translatePgError(err))
	}

	return id, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) (bool, error) {
	args := productArgs(product)
	args["id"] = product.ID

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name        = @name,
			sku         = @sku,
			quantity    = @quantity,
			price       = @price,
			status      = @status,
			description = @description,
			category_id = @category_id
		WHERE id = @id
	`, args)
	if err != nil {
		return false, fmt.Errorf("update product: %w", translatePgError(err))
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) UpdateProductQuantity(ctx context.Context, id int64, quantity int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return false, fmt.Errorf("update product quantity: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) GetProductBySku(ctx context.Context, sku string) (model.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1 ORDER BY id LIMIT 1`, sku)

	product, err := scanProduct(row)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product by sku: %w", err)
	}

	return product, nil
}

func (r productRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var (
		conds []string
		args  = pgx.NamedArgs{}
	)
	if filter.Status != nil {
		conds = append(conds, "status = @status")
		args["status"] = string(*filter.Status)
	}
	if filter.CategoryID != nil {
		conds = append(conds, "category_id = @category_id")
		args["category_id"] = *filter.CategoryID
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	return products, nil
}

func (r productRepository) CountProductsByCategory(ctx context.Context) (map[int64]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category_id, COUNT(*)
		FROM products
		WHERE category_id IS NOT NULL
		GROUP BY category_id
	`)
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			categoryID int64
			count      int
		)
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("scan product count: %w", err)
		}
		counts[categoryID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product counts: %w", err)
	}

	return counts, nil
}

func productArgs(product model.Product) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        product.Name,
		"sku":         product.Sku,
		"quantity":    product.Quantity,
		"price":       decimalToNumeric(product.Price),
		"status":      string(product.Status),
		"description": product.Description,
		"category_id": product.CategoryID,
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		product model.Product
		price   pgtype.Numeric
		status  string
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Sku,
		&product.Quantity,
		&price,
		&status,
		&product.Description,
		&product.CategoryID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("scan product: %w", err)
	}

	product.Price, err = numericToDecimal(price)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price: %w", err)
	}
	product.Status = model.ProductStatus(status)

	return product, nil
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Decimal{}, fmt.Errorf("price is not a finite number")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

func translatePgError(err error) error {
	switch {
	case db.IsPgError(err, db.UniqueViolationCode):
		return errors.Join(ErrDuplicate, err)
	case db.IsPgError(err, db.ForeignKeyViolationCode):
		return errors.Join(ErrForeignKey, err)
	default:
		return err
	}
}
