package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/storage/db"
)

const categoryColumns = `id, name, description, is_active`

type categoryRepository struct {
	db db.DB
}

func (r categoryRepository) WithDB(db db.DB) categoryRepository {
	return categoryRepository{db: db}
}

func (r categoryRepository) CreateCategory(ctx context.Context, category model.ProductCategory) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO product_categories (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`, category.Name, category.Description, category.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", translatePgError(err))
	}

	return id, nil
}

func (r categoryRepository) UpdateCategory(ctx context.Context, category model.ProductCategory) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE product_categories
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1
	`, category.ID, category.Name, category.Description, category.IsActive)
	if err != nil {
		return false, fmt.Errorf("update category: %w", translatePgError(err))
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteCategory relies on the ON DELETE SET NULL foreign key to detach
// products.
func (r categoryRepository) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r categoryRepository) GetCategory(ctx context.Context, id int64) (model.ProductCategory, error) {
	row := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM product_categories WHERE id = $1`, id)

	category, err := scanCategory(row)
	if err != nil {
		return model.ProductCategory{}, fmt.Errorf("get category: %w", err)
	}

	return category, nil
}

func (r categoryRepository) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM product_categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ProductCategory, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect categories: %w", err)
	}

	return categories, nil
}

func scanCategory(row pgx.Row) (model.ProductCategory, error) {
	var category model.ProductCategory
	err := row.Scan(&category.ID, &category.Name, &category.Description, &category.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ProductCategory{}, ErrNotFound
	}
	if err != nil {
		return model.ProductCategory{}, fmt.Errorf("scan category: %w", err)
	}

	return category, nil
}
