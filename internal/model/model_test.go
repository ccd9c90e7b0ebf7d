package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
)

func TestParseProductStatus(t *testing.T) {
	t.Run("Should accept names case-insensitively", func(t *testing.T) {
		got, err := model.ParseProductStatus(" outofstock ")
		require.NoError(t, err)
		assert.Equal(t, model.ProductStatusOutOfStock, got)
	})

	t.Run("Should accept ordinals", func(t *testing.T) {
		got, err := model.ParseProductStatus("3")
		require.NoError(t, err)
		assert.Equal(t, model.ProductStatusPreOrder, got)
	})

	t.Run("Should reject unknown values", func(t *testing.T) {
		for _, v := range []string{"", "4", "-1", "Sold"} {
			_, err := model.ParseProductStatus(v)
			assert.Error(t, err, v)
		}
	})

	t.Run("Should flag statuses that require zero stock", func(t *testing.T) {
		assert.True(t, model.ProductStatusOutOfStock.RequiresZeroQuantity())
		assert.True(t, model.ProductStatusPreOrder.RequiresZeroQuantity())
		assert.False(t, model.ProductStatusInStock.RequiresZeroQuantity())
		assert.False(t, model.ProductStatusDiscontinued.RequiresZeroQuantity())
		assert.Error(t, model.ProductStatus("Sold").Validate())
	})
}

func TestProductJSON(t *testing.T) {
	t.Run("Should encode price as a number and omit absent references", func(t *testing.T) {
		p := model.Product{
			ID:       1,
			Name:     "Mouse",
			Sku:      "MS-1",
			Quantity: 3,
			Price:    decimal.RequireFromString("19.90"),
			Status:   model.ProductStatusInStock,
		}

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"Mouse","sku":"MS-1","quantity":3,"price":19.9,"status":"InStock"}`, string(b))
	})

	t.Run("Should report category membership", func(t *testing.T) {
		id := int64(4)
		p := model.Product{CategoryID: &id}

		assert.True(t, p.InCategory(4))
		assert.False(t, p.InCategory(5))
		assert.False(t, model.Product{}.InCategory(4))
	})
}
