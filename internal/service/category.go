package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/cachetag"
	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/pkg/validator"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, params ProductCategoryParams) (int64, error)
	UpdateCategory(ctx context.Context, params UpdateProductCategoryParams) error
	// DeleteCategory detaches the category's products instead of deleting
	// them.
	DeleteCategory(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]CategoryListView, error)
	GetCategory(ctx context.Context, id int64) (CategoryDetailView, error)
	ListCategoryProducts(ctx context.Context, id int64) ([]ProductView, error)
}

type categoryService struct {
	logger    *slog.Logger
	store     repository.Store
	validator validator.Validator
}

func NewCategoryService(
	logger *slog.Logger,
	store repository.Store,
	validator validator.Validator,
) CategoryService {
	return &categoryService{
		logger:    logger.With(slog.String("service", "category")),
		store:     store,
		validator: validator,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, params ProductCategoryParams) (int64, error) {
	params = params.Normalize()
	if err := s.validator.Validate(params); err != nil {
		return 0, fmt.Errorf("validate category: %w", err)
	}

	var id int64
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		id, err = tx.Categories().CreateCategory(ctx, params.category(0))
		if err != nil {
			return fmt.Errorf("category repository create category: %w", mapCategoryWriteErr(err))
		}

		return writeInvalidation(ctx, tx, event.EntityCategory, event.ActionCreated, id,
			cachetag.CategoryCreated())
	}); err != nil {
		return 0, fmt.Errorf("store with tx: %w", err)
	}

	s.logger.InfoContext(ctx, "category created", slog.Int64("category_id", id))
	return id, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, params UpdateProductCategoryParams) error {
	params.ProductCategoryParams = params.Normalize()
	if err := s.validator.Validate(params); err != nil {
		return fmt.Errorf("validate category: %w", err)
	}

	var found bool
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		found, err = tx.Categories().UpdateCategory(ctx, params.category(params.ID))
		if err != nil {
			return fmt.Errorf("category repository update category: %w", mapCategoryWriteErr(err))
		}
		if !found {
			return nil
		}

		return writeInvalidation(ctx, tx, event.EntityCategory, event.ActionUpdated, params.ID,
			cachetag.CategoryUpdated(params.ID))
	}); err != nil {
		return fmt.Errorf("store with tx: %w", err)
	}

	s.logMutation(ctx, "category updated", params.ID, found)
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	var found bool
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		found, err = tx.Categories().DeleteCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("category repository delete category: %w", err)
		}
		if !found {
			return nil
		}

		return writeInvalidation(ctx, tx, event.EntityCategory, event.ActionDeleted, id,
			cachetag.CategoryDeleted(id))
	}); err != nil {
		return fmt.Errorf("store with tx: %w", err)
	}

	s.logMutation(ctx, "category deleted", id, found)
	return nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]CategoryListView, error) {
	var views []CategoryListView
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		categories, err := tx.Categories().ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("category repository list categories: %w", err)
		}

		counts, err := tx.Products().CountProductsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("product repository count products by category: %w", err)
		}

		views = make([]CategoryListView, 0, len(categories))
		for _, c := range categories {
			views = append(views, projectCategoryList(c, counts))
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("store with read tx: %w", err)
	}

	return views, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (CategoryDetailView, error) {
	var view CategoryDetailView
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		category, err := tx.Categories().GetCategory(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.CategoryNotFoundErr
		}
		if err != nil {
			return fmt.Errorf("category repository get category: %w", err)
		}

		products, err := tx.Products().ListProducts(ctx, repository.ProductFilter{CategoryID: &id})
		if err != nil {
			return fmt.Errorf("product repository list products: %w", err)
		}

		view = projectCategoryDetail(category, products)
		return nil
	}); err != nil {
		return CategoryDetailView{}, fmt.Errorf("store with read tx: %w", err)
	}

	return view, nil
}

// ListCategoryProducts returns an empty list for unknown categories.
func (s *categoryService) ListCategoryProducts(ctx context.Context, id int64) ([]ProductView, error) {
	var views []ProductView
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		products, names, err := loadProducts(ctx, tx, repository.ProductFilter{CategoryID: &id})
		if err != nil {
			return err
		}

		views = projectProducts(products, names)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("store with read tx: %w", err)
	}

	return views, nil
}

func (s *categoryService) logMutation(ctx context.Context, msg string, id int64, found bool) {
	if !found {
		s.logger.InfoContext(ctx, "category not found, nothing changed", slog.Int64("category_id", id))
		return
	}
	s.logger.InfoContext(ctx, msg, slog.Int64("category_id", id))
}

func mapCategoryWriteErr(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return apperr.CategoryNameConflictErr.WrapParent(err)
	}
	return err
}
