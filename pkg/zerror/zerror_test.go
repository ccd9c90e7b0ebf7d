package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("Should match by code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("service get product: %w", notFound.WrapParent(errors.New("no rows")))

		assert.ErrorIs(t, err, notFound)
		assert.NotErrorIs(t, err, zerror.NewNotFound("CATEGORY_NOT_FOUND", "category not found"))
	})

	t.Run("Should expose parent via unwrap", func(t *testing.T) {
		parent := errors.New("boom")
		err := notFound.WrapParent(parent)

		assert.ErrorIs(t, err, parent)
		assert.Equal(t, parent, err.Parent())
		assert.Contains(t, err.Error(), "Parent=(boom)")
	})

	t.Run("Should keep status and code when message changes", func(t *testing.T) {
		err := notFound.WithMsg("product 7 not found")

		assert.Equal(t, zerror.StatusNotFound, err.Status())
		assert.Equal(t, "PRODUCT_NOT_FOUND", err.Code())
		assert.Equal(t, "product 7 not found", err.Msg())
	})

	t.Run("Should render status names", func(t *testing.T) {
		assert.Equal(t, "NOT_FOUND", zerror.StatusNotFound.String())
		assert.Equal(t, "UNKNOWN", zerror.Status(200).String())
	})
}
