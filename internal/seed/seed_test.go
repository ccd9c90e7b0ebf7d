package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/seed"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Should seed an empty store once", func(t *testing.T) {
		store := repository.NewMemoryStore()

		seeded, err := seed.Run(ctx, log.Discard(), store)
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = seed.Run(ctx, log.Discard(), store)
		require.NoError(t, err)
		assert.False(t, seeded)

		categories, err := store.Categories().ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 5)

		products, err := store.Products().ListProducts(ctx, repository.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 20)

		counts, err := store.Products().CountProductsByCategory(ctx)
		require.NoError(t, err)
		for _, c := range categories {
			assert.Equal(t, 4, counts[c.ID], c.Name)
		}
	})

	t.Run("Should only hold products that pass validation", func(t *testing.T) {
		v, err := service.NewValidator()
		require.NoError(t, err)

		for _, p := range seed.Products() {
			params := service.ProductParams{
				Name:        p.Name,
				Sku:         p.Sku,
				Quantity:    p.Quantity,
				Price:       p.Price,
				Status:      p.Status,
				Description: p.Description,
			}
			assert.NoError(t, v.Validate(params.Normalize()), p.Sku)
		}
	})
}
