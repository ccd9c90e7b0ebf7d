package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/gen"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
)

type categoryHandler struct {
	categorySvc service.CategoryService
}

func newCategoryHandler(categorySvc service.CategoryService) *categoryHandler {
	return &categoryHandler{
		categorySvc: categorySvc,
	}
}

func (h *categoryHandler) ListProductCategories(ctx context.Context, _ gen.ListProductCategoriesRequestObject) (gen.ListProductCategoriesResponseObject, error) {
	categories, err := h.categorySvc.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category service list categories: %w", err)
	}
	return gen.ListProductCategories200JSONResponse(categories), nil
}

func (h *categoryHandler) GetProductCategoryById(ctx context.Context, request gen.GetProductCategoryByIdRequestObject) (gen.GetProductCategoryByIdResponseObject, error) {
	category, err := h.categorySvc.GetCategory(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("category service get category: %w", err)
	}
	return gen.GetProductCategoryById200JSONResponse(category), nil
}

func (h *categoryHandler) GetProductCategoryProducts(ctx context.Context, request gen.GetProductCategoryProductsRequestObject) (gen.GetProductCategoryProductsResponseObject, error) {
	products, err := h.categorySvc.ListCategoryProducts(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("category service list category products: %w", err)
	}
	return gen.GetProductCategoryProducts200JSONResponse(products), nil
}

func (h *categoryHandler) CreateProductCategory(ctx context.Context, request gen.CreateProductCategoryRequestObject) (gen.CreateProductCategoryResponseObject, error) {
	id, err := h.categorySvc.CreateCategory(ctx, *request.Body)
	if err != nil {
		return nil, fmt.Errorf("category service create category: %w", err)
	}
	return gen.CreateProductCategory200JSONResponse(id), nil
}

func (h *categoryHandler) UpdateProductCategory(ctx context.Context, request gen.UpdateProductCategoryRequestObject) (gen.UpdateProductCategoryResponseObject, error) {
	if request.Body.ID != request.Id {
		return nil, apperr.IDMismatchErr
	}

	if err := h.categorySvc.UpdateCategory(ctx, *request.Body); err != nil {
		return nil, fmt.Errorf("category service update category: %w", err)
	}
	return gen.UpdateProductCategory204Response{}, nil
}

func (h *categoryHandler) DeleteProductCategory(ctx context.Context, request gen.DeleteProductCategoryRequestObject) (gen.DeleteProductCategoryResponseObject, error) {
	if err := h.categorySvc.DeleteCategory(ctx, request.Id); err != nil {
		return nil, fmt.Errorf("category service delete category: %w", err)
	}
	return gen.DeleteProductCategory204Response{}, nil
}
