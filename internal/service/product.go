package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/cachetag"
	"github.com/tuanvumaihuynh/product-inventory/internal/event"
	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/pkg/validator"
)

type ProductService interface {
	CreateProduct(ctx context.Context, params ProductParams) (int64, error)
	// UpdateProduct, UpdateInventory and DeleteProduct succeed without effect
	// when the product does not exist.
	UpdateProduct(ctx context.Context, params UpdateProductParams) error
	UpdateInventory(ctx context.Context, params UpdateInventoryParams) error
	DeleteProduct(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]ProductView, error)
	GetProduct(ctx context.Context, id int64) (ProductView, error)
	GetProductBySku(ctx context.Context, sku string) (ProductView, error)
	ListProductsByStatus(ctx context.Context, status model.ProductStatus) ([]ProductView, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]ProductView, error)
	ListLowStock(ctx context.Context, threshold int) ([]LowStockAlert, error)
}

type productService struct {
	logger    *slog.Logger
	store     repository.Store
	validator validator.Validator
}

func NewProductService(
	logger *slog.Logger,
	store repository.Store,
	validator validator.Validator,
) ProductService {
	return &productService{
		logger:    logger.With(slog.String("service", "product")),
		store:     store,
		validator: validator,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (int64, error) {
	params = params.Normalize()
	if err := s.validator.Validate(params); err != nil {
		return 0, fmt.Errorf("validate product: %w", err)
	}

	var id int64
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := checkCategoryExists(ctx, tx, params.CategoryID); err != nil {
			return err
		}

		var err error
		id, err = tx.Products().CreateProduct(ctx, params.product(0))
		if err != nil {
			return fmt.Errorf("product repository create product: %w", mapProductWriteErr(err))
		}

		return writeInvalidation(ctx, tx, event.EntityProduct, event.ActionCreated, id,
			cachetag.ProductCreated(params.CategoryID))
	}); err != nil {
		return 0, fmt.Errorf("store with tx: %w", err)
	}

	s.logger.InfoContext(ctx, "product created", slog.Int64("product_id", id))
	return id, nil
}

func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) error {
	params.ProductParams = params.Normalize()
	if err := s.validator.Validate(params); err != nil {
		return fmt.Errorf("validate product: %w", err)
	}

	var found bool
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := checkCategoryExists(ctx, tx, params.CategoryID); err != nil {
			return err
		}

		var err error
		found, err = tx.Products().UpdateProduct(ctx, params.product(params.ID))
		if err != nil {
			return fmt.Errorf("product repository update product: %w", mapProductWriteErr(err))
		}
		if !found {
			return nil
		}

		return writeInvalidation(ctx, tx, event.EntityProduct, event.ActionUpdated, params.ID,
			cachetag.ProductUpdated(params.ID, params.CategoryID))
	}); err != nil {
		return fmt.Errorf("store with tx: %w", err)
	}

	s.logMutation(ctx, "product updated", params.ID, found)
	return nil
}

func (s *productService) UpdateInventory(ctx context.Context, params UpdateInventoryParams) error {
	if err := s.validator.Validate(params); err != nil {
		return fmt.Errorf("validate inventory: %w", err)
	}

	var found bool
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		found, err = tx.Products().UpdateProductQuantity(ctx, params.ID, params.Quantity)
		if err != nil {
			return fmt.Errorf("product repository update product quantity: %w", err)
		}
		if !found {
			return nil
		}

		return writeInvalidation(ctx, tx, event.EntityProduct, event.ActionInventoryUpdated, params.ID,
			cachetag.InventoryUpdated(params.ID))
	}); err != nil {
		return fmt.Errorf("store with tx: %w", err)
	}

	s.logMutation(ctx, "product inventory updated", params.ID, found)
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	var found bool
	if err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		found, err = tx.Products().DeleteProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}
		if !found {
			return nil
		}

		return writeInvalidation(ctx, tx, event.EntityProduct, event.ActionDeleted, id,
			cachetag.ProductDeleted(id))
	}); err != nil {
		return fmt.Errorf("store with tx: %w", err)
	}

	s.logMutation(ctx, "product deleted", id, found)
	return nil
}

func (s *productService) ListProducts(ctx context.Context) ([]ProductView, error) {
	return s.listProducts(ctx, repository.ProductFilter{})
}

func (s *productService) GetProduct(ctx context.Context, id int64) (ProductView, error) {
	return s.getProduct(ctx, func(repo repository.ProductRepository) (model.Product, error) {
		return repo.GetProduct(ctx, id)
	})
}

func (s *productService) GetProductBySku(ctx context.Context, sku string) (ProductView, error) {
	sku = NormalizeSku(sku)
	return s.getProduct(ctx, func(repo repository.ProductRepository) (model.Product, error) {
		return repo.GetProductBySku(ctx, sku)
	})
}

func (s *productService) ListProductsByStatus(ctx context.Context, status model.ProductStatus) ([]ProductView, error) {
	return s.listProducts(ctx, repository.ProductFilter{Status: &status})
}

func (s *productService) ListProductsByCategory(ctx context.Context, categoryID int64) ([]ProductView, error) {
	return s.listProducts(ctx, repository.ProductFilter{CategoryID: &categoryID})
}

func (s *productService) ListLowStock(ctx context.Context, threshold int) ([]LowStockAlert, error) {
	if threshold < 0 {
		return nil, apperr.InvalidParameterErr.WithMsg("threshold must not be negative")
	}

	inStock := model.ProductStatusInStock
	var alerts []LowStockAlert
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		products, names, err := loadProducts(ctx, tx, repository.ProductFilter{Status: &inStock})
		if err != nil {
			return err
		}

		alerts = make([]LowStockAlert, 0)
		for _, p := range products {
			if isLowStock(p, threshold) {
				alerts = append(alerts, projectLowStockAlert(p, names))
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("store with read tx: %w", err)
	}

	return alerts, nil
}

func (s *productService) listProducts(ctx context.Context, filter repository.ProductFilter) ([]ProductView, error) {
	var views []ProductView
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		products, names, err := loadProducts(ctx, tx, filter)
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

func (s *productService) getProduct(
	ctx context.Context,
	get func(repository.ProductRepository) (model.Product, error),
) (ProductView, error) {
	var view ProductView
	if err := s.store.WithReadTx(ctx, func(tx repository.Store) error {
		product, err := get(tx.Products())
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ProductNotFoundErr
		}
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		names := categoryNames{}
		if product.CategoryID != nil {
			category, err := tx.Categories().GetCategory(ctx, *product.CategoryID)
			switch {
			case err == nil:
				names[category.ID] = category.Name
			case !errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("category repository get category: %w", err)
			}
		}

		view = projectProduct(product, names)
		return nil
	}); err != nil {
		return ProductView{}, fmt.Errorf("store with read tx: %w", err)
	}

	return view, nil
}

func (s *productService) logMutation(ctx context.Context, msg string, id int64, found bool) {
	if !found {
		s.logger.InfoContext(ctx, "product not found, nothing changed", slog.Int64("product_id", id))
		return
	}
	s.logger.InfoContext(ctx, msg, slog.Int64("product_id", id))
}

func loadProducts(
	ctx context.Context,
	tx repository.Store,
	filter repository.ProductFilter,
) ([]model.Product, categoryNames, error) {
	products, err := tx.Products().ListProducts(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("product repository list products: %w", err)
	}

	categories, err := tx.Categories().ListCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("category repository list categories: %w", err)
	}

	return products, newCategoryNames(categories), nil
}

func checkCategoryExists(ctx context.Context, tx repository.Store, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	_, err := tx.Categories().GetCategory(ctx, *categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.CategoryReferenceNotFoundErr
	}
	if err != nil {
		return fmt.Errorf("category repository get category: %w", err)
	}

	return nil
}

func mapProductWriteErr(err error) error {
	if errors.Is(err, repository.ErrForeignKey) {
		return apperr.CategoryReferenceNotFoundErr.WrapParent(err)
	}
	return err
}
