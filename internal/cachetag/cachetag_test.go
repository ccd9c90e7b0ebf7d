package cachetag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/internal/cachetag"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func TestMutationTags(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"create product", cachetag.Strings(cachetag.ProductCreated(nil)), []string{"ProductList", "CategoryList"}},
		{"create product in category", cachetag.Strings(cachetag.ProductCreated(ptr.New(int64(3)))), []string{"ProductList", "CategoryList", "ProductList:category-3"}},
		{"update product", cachetag.Strings(cachetag.ProductUpdated(7, ptr.New(int64(3)))), []string{"Product:7", "ProductList", "CategoryList", "ProductList:category-3"}},
		{"update inventory", cachetag.Strings(cachetag.InventoryUpdated(7)), []string{"Product:7", "ProductList"}},
		{"delete product", cachetag.Strings(cachetag.ProductDeleted(7)), []string{"Product:7", "ProductList", "CategoryList"}},
		{"create category", cachetag.Strings(cachetag.CategoryCreated()), []string{"CategoryList"}},
		{"update category", cachetag.Strings(cachetag.CategoryUpdated(2)), []string{"Category:2", "CategoryList", "ProductList"}},
		{"delete category", cachetag.Strings(cachetag.CategoryDeleted(2)), []string{"Category:2", "CategoryList", "ProductList"}},
	}

	for _, tt := range tests {
		t.Run("Should tag "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("Should round trip tags", func(t *testing.T) {
		for _, tag := range cachetag.ProductUpdated(7, ptr.New(int64(3))) {
			assert.Equal(t, tag, cachetag.Parse(tag.String()))
		}
	})
}
