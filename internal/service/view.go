package service

import (
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
)

// ProductView is a product as returned to clients, with the name of its
// category resolved.
type ProductView struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Sku          string              `json:"sku"`
	Quantity     int                 `json:"quantity"`
	Price        decimal.Decimal     `json:"price"`
	Status       model.ProductStatus `json:"status"`
	Description  *string             `json:"description"`
	CategoryID   *int64              `json:"categoryId"`
	CategoryName *string             `json:"categoryName"`
}

// CategoryListView is a category with the live number of its products.
type CategoryListView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"isActive"`
	ProductCount int     `json:"productCount"`
}

// CategoryDetailView is a category with every product it holds.
type CategoryDetailView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	IsActive    bool          `json:"isActive"`
	Products    []ProductView `json:"products"`
}

// categoryNames resolves category ids to names at query time.
type categoryNames map[int64]string

func newCategoryNames(categories []model.ProductCategory) categoryNames {
	names := make(categoryNames, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func (n categoryNames) lookup(id *int64) *string {
	if id == nil {
		return nil
	}
	name, ok := n[*id]
	if !ok {
		return nil
	}
	return &name
}

func projectProduct(p model.Product, names categoryNames) ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Sku:          p.Sku,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Status:       p.Status,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: names.lookup(p.CategoryID),
	}
}

func projectProducts(products []model.Product, names categoryNames) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, projectProduct(p, names))
	}
	return views
}

func projectCategoryList(c model.ProductCategory, counts map[int64]int) CategoryListView {
	return CategoryListView{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		IsActive:     c.IsActive,
		ProductCount: counts[c.ID],
	}
}

func projectCategoryDetail(c model.ProductCategory, products []model.Product) CategoryDetailView {
	return CategoryDetailView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		Products:    projectProducts(products, categoryNames{c.ID: c.Name}),
	}
}

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// DefaultLowStockThreshold applies when no threshold is given.
const DefaultLowStockThreshold = 10

// LowStockAlert flags an in-stock product that is running out.
type LowStockAlert struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Sku          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	CategoryName *string `json:"categoryName"`
	Severity     string  `json:"severity"`
}

func isLowStock(p model.Product, threshold int) bool {
	return p.Status == model.ProductStatusInStock && p.Quantity <= threshold
}

func lowStockSeverity(quantity int) string {
	switch {
	case quantity == 0:
		return SeverityCritical
	case quantity <= 5:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

func projectLowStockAlert(p model.Product, names categoryNames) LowStockAlert {
	return LowStockAlert{
		ID:           p.ID,
		Name:         p.Name,
		Sku:          p.Sku,
		Quantity:     p.Quantity,
		CategoryName: names.lookup(p.CategoryID),
		Severity:     lowStockSeverity(p.Quantity),
	}
}
