package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// PriceScale is the number of fractional digits kept for prices.
const PriceScale = 2

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Sku         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      ProductStatus   `json:"status"`
	Description *string         `json:"description,omitempty"`
	CategoryID  *int64          `json:"categoryId,omitempty"`
}

// InCategory reports whether the product references categoryID.
func (p Product) InCategory(categoryID int64) bool {
	return p.CategoryID != nil && *p.CategoryID == categoryID
}
