package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/gen"
	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, _ gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}
	return gen.ListProducts200JSONResponse(products), nil
}

func (h *productHandler) GetProductById(ctx context.Context, request gen.GetProductByIdRequestObject) (gen.GetProductByIdResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}
	return gen.GetProductById200JSONResponse(product), nil
}

func (h *productHandler) GetProductBySku(ctx context.Context, request gen.GetProductBySkuRequestObject) (gen.GetProductBySkuResponseObject, error) {
	product, err := h.productSvc.GetProductBySku(ctx, request.Sku)
	if err != nil {
		return nil, fmt.Errorf("product service get product by sku: %w", err)
	}
	return gen.GetProductBySku200JSONResponse(product), nil
}

func (h *productHandler) GetProductsByStatus(ctx context.Context, request gen.GetProductsByStatusRequestObject) (gen.GetProductsByStatusResponseObject, error) {
	status, err := model.ParseProductStatus(request.Status)
	if err != nil {
		return nil, apperr.InvalidParameterErr.WithMsg("invalid product status").WrapParent(err)
	}

	products, err := h.productSvc.ListProductsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("product service list products by status: %w", err)
	}
	return gen.GetProductsByStatus200JSONResponse(products), nil
}

func (h *productHandler) GetProductsByCategory(ctx context.Context, request gen.GetProductsByCategoryRequestObject) (gen.GetProductsByCategoryResponseObject, error) {
	products, err := h.productSvc.ListProductsByCategory(ctx, request.CategoryId)
	if err != nil {
		return nil, fmt.Errorf("product service list products by category: %w", err)
	}
	return gen.GetProductsByCategory200JSONResponse(products), nil
}

func (h *productHandler) ListLowStockProducts(ctx context.Context, request gen.ListLowStockProductsRequestObject) (gen.ListLowStockProductsResponseObject, error) {
	threshold := service.DefaultLowStockThreshold
	if request.Params.Threshold != nil {
		threshold = *request.Params.Threshold
	}

	alerts, err := h.productSvc.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("product service list low stock: %w", err)
	}
	return gen.ListLowStockProducts200JSONResponse(alerts), nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	id, err := h.productSvc.CreateProduct(ctx, *request.Body)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}
	return gen.CreateProduct200JSONResponse(id), nil
}

func (h *productHandler) UpdateProduct(ctx context.Context, request gen.UpdateProductRequestObject) (gen.UpdateProductResponseObject, error) {
	if request.Body.ID != request.Id {
		return nil, apperr.IDMismatchErr
	}

	if err := h.productSvc.UpdateProduct(ctx, *request.Body); err != nil {
		return nil, fmt.Errorf("product service update product: %w", err)
	}
	return gen.UpdateProduct204Response{}, nil
}

func (h *productHandler) UpdateInventory(ctx context.Context, request gen.UpdateInventoryRequestObject) (gen.UpdateInventoryResponseObject, error) {
	if request.Body.ID != request.Id {
		return nil, apperr.IDMismatchErr
	}

	if err := h.productSvc.UpdateInventory(ctx, *request.Body); err != nil {
		return nil, fmt.Errorf("product service update inventory: %w", err)
	}
	return gen.UpdateInventory204Response{}, nil
}

func (h *productHandler) DeleteProduct(ctx context.Context, request gen.DeleteProductRequestObject) (gen.DeleteProductResponseObject, error) {
	if err := h.productSvc.DeleteProduct(ctx, request.Id); err != nil {
		return nil, fmt.Errorf("product service delete product: %w", err)
	}
	return gen.DeleteProduct204Response{}, nil
}
