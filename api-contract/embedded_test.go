package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/product-inventory/api-contract"
)

func TestLoad(t *testing.T) {
	t.Run("Should load a valid specification", func(t *testing.T) {
		doc, err := apicontract.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "Product Inventory API", doc.Info.Title)
		assert.NotNil(t, doc.Paths.Find("/api/Products/{id}"))
		assert.Contains(t, doc.Components.Schemas, "ProductView")
	})
}
