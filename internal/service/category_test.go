package service_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round trip a new category", func(t *testing.T) {
		f := newFixture(t)

		id, err := f.categories.CreateCategory(ctx, service.ProductCategoryParams{
			Name:        "Test",
			Description: ptr.New("d"),
			IsActive:    ptr.New(true),
		})
		require.NoError(t, err)

		got, err := f.categories.GetCategory(ctx, id)
		require.NoError(t, err)

		want := service.CategoryDetailView{
			ID:          id,
			Name:        "Test",
			Description: ptr.New("d"),
			IsActive:    true,
			Products:    []service.ProductView{},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("category mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should nest products carrying the category name", func(t *testing.T) {
		f := newFixture(t)
		id := f.createCategory(t, "Home & Garden")

		params := validProduct()
		params.CategoryID = &id
		f.createProduct(t, params)

		got, err := f.categories.GetCategory(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.Products, 1)
		assert.Equal(t, ptr.New("Home & Garden"), got.Products[0].CategoryName)

		products, err := f.categories.ListCategoryProducts(ctx, id)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Should validate category payloads", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.categories.CreateCategory(ctx, service.ProductCategoryParams{Name: "12345"})
		msgs := fieldMessages(t, err)
		assert.Equal(t, "cannot be only numbers", msgs["name"])
		assert.Equal(t, "field is required", msgs["isActive"])

		_, err = f.categories.CreateCategory(ctx, service.ProductCategoryParams{Name: "Books!", IsActive: ptr.New(false)})
		assert.Equal(t, map[string]string{"name": "contains invalid characters"}, fieldMessages(t, err))
	})

	t.Run("Should reject duplicate names with a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.createCategory(t, "Books")

		_, err := f.categories.CreateCategory(ctx, service.ProductCategoryParams{Name: " Books ", IsActive: ptr.New(true)})
		assert.ErrorIs(t, err, apperr.CategoryNameConflictErr)

		other := f.createCategory(t, "Games")
		err = f.categories.UpdateCategory(ctx, service.UpdateProductCategoryParams{
			ID:                    other,
			ProductCategoryParams: service.ProductCategoryParams{Name: "Books", IsActive: ptr.New(true)},
		})
		assert.ErrorIs(t, err, apperr.CategoryNameConflictErr)
	})

	t.Run("Should update every field", func(t *testing.T) {
		f := newFixture(t)
		id := f.createCategory(t, "Books")
		f.events(t)

		require.NoError(t, f.categories.UpdateCategory(ctx, service.UpdateProductCategoryParams{
			ID: id,
			ProductCategoryParams: service.ProductCategoryParams{
				Name:        "Rare Books",
				Description: ptr.New("  old and new  "),
				IsActive:    ptr.New(false),
			},
		}))

		got, err := f.categories.GetCategory(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Rare Books", got.Name)
		assert.Equal(t, ptr.New("old and new"), got.Description)
		assert.False(t, got.IsActive)

		events := f.events(t)
		require.Len(t, events, 1)
		assert.Equal(t, []string{"Category:1", "CategoryList", "ProductList"}, events[0].Tags)
	})

	t.Run("Should detach products when a category is deleted", func(t *testing.T) {
		f := newFixture(t)
		id := f.createCategory(t, "Books")

		params := validProduct()
		params.CategoryID = &id
		productID := f.createProduct(t, params)

		require.NoError(t, f.categories.DeleteCategory(ctx, id))

		got, err := f.products.GetProduct(ctx, productID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Nil(t, got.CategoryName)

		_, err = f.categories.GetCategory(ctx, id)
		assert.ErrorIs(t, err, apperr.CategoryNotFoundErr)
	})

	t.Run("Should count live products per category", func(t *testing.T) {
		f := newFixture(t)
		books := f.createCategory(t, "Books")
		games := f.createCategory(t, "Games")

		for i, categoryID := range []int64{books, books, games} {
			params := validProduct()
			params.Sku = "SKU-" + string(rune('A'+i))
			params.CategoryID = &categoryID
			f.createProduct(t, params)
		}

		counts := func() map[string]int {
			views, err := f.categories.ListCategories(ctx)
			require.NoError(t, err)
			out := map[string]int{}
			for _, v := range views {
				out[v.Name] = v.ProductCount
			}
			return out
		}
		assert.Equal(t, map[string]int{"Books": 2, "Games": 1}, counts())

		require.NoError(t, f.products.DeleteProduct(ctx, 1))
		require.NoError(t, f.products.UpdateProduct(ctx, service.UpdateProductParams{ID: 3, ProductParams: validProduct()}))
		assert.Equal(t, map[string]int{"Books": 1, "Games": 0}, counts())
	})

	t.Run("Should silently ignore missing categories", func(t *testing.T) {
		f := newFixture(t)

		assert.NoError(t, f.categories.UpdateCategory(ctx, service.UpdateProductCategoryParams{
			ID:                    9,
			ProductCategoryParams: service.ProductCategoryParams{Name: "Books", IsActive: ptr.New(true)},
		}))
		assert.NoError(t, f.categories.DeleteCategory(ctx, 9))
		assert.Empty(t, f.events(t))

		products, err := f.categories.ListCategoryProducts(ctx, 9)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
