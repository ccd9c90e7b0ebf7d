package service

import (
	"strings"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/pkg/validator"
)

// ProductParams is the writable part of a product.
type ProductParams struct {
	Name        string              `json:"name" validate:"required,min=2,max=100"`
	Sku         string              `json:"sku" validate:"required,min=3,max=50,sku,nohyphenedge,nohyphenrun"`
	Quantity    int                 `json:"quantity" validate:"gte=0,lte=999999"`
	Price       decimal.Decimal     `json:"price" validate:"dgte=0.01,dlte=999999.99,dscale=2"`
	Status      model.ProductStatus `json:"status" validate:"enum"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	CategoryID  *int64              `json:"categoryId" validate:"omitempty,gt=0"`
}

// Normalize trims text fields, upper-cases the SKU and turns an empty
// description into no description.
func (p ProductParams) Normalize() ProductParams {
	p.Name = strings.TrimSpace(p.Name)
	p.Sku = NormalizeSku(p.Sku)
	p.Description = normalizeOptional(p.Description)
	return p
}

func (p ProductParams) product(id int64) model.Product {
	return model.Product{
		ID:          id,
		Name:        p.Name,
		Sku:         p.Sku,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Status:      p.Status,
		Description: p.Description,
		CategoryID:  p.CategoryID,
	}
}

type UpdateProductParams struct {
	ID int64 `json:"id"`
	ProductParams
}

type UpdateInventoryParams struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity" validate:"gte=0,lte=999999"`
}

// ProductCategoryParams is the writable part of a product category.
type ProductCategoryParams struct {
	Name        string  `json:"name" validate:"required,min=2,max=100,notnumeric,categoryname"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive" validate:"required"`
}

func (p ProductCategoryParams) Normalize() ProductCategoryParams {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = normalizeOptional(p.Description)
	return p
}

func (p ProductCategoryParams) category(id int64) model.ProductCategory {
	return model.ProductCategory{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive != nil && *p.IsActive,
	}
}

type UpdateProductCategoryParams struct {
	ID int64 `json:"id"`
	ProductCategoryParams
}

// NormalizeSku is applied to stored SKUs and to SKU lookups alike.
func NormalizeSku(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NewValidator returns the validator with the product cross-field rules
// registered.
func NewValidator() (*validator.DefaultValidator, error) {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		return nil, err
	}

	v.RegisterStructValidation(validateProductStock, ProductParams{})
	return v, nil
}

func validateProductStock(sl govalidator.StructLevel) {
	p, ok := sl.Current().Interface().(ProductParams)
	if !ok || p.Quantity == 0 {
		return
	}

	switch p.Status {
	case model.ProductStatusOutOfStock:
		sl.ReportError(p.Quantity, "quantity", "Quantity", "outofstockqty", "")
	case model.ProductStatusPreOrder:
		sl.ReportError(p.Quantity, "quantity", "Quantity", "preorderqty", "")
	}
}
