package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func TestPtr(t *testing.T) {
	t.Run("Should return zero value for nil", func(t *testing.T) {
		assert.Equal(t, "", ptr.Value[string](nil))
		assert.Equal(t, int64(7), ptr.Value(ptr.New(int64(7))))
	})

	t.Run("Should clone into a distinct pointer", func(t *testing.T) {
		src := ptr.New("a")
		dst := ptr.Clone(src)

		*dst = "b"
		assert.Equal(t, "a", *src)
		assert.Nil(t, ptr.Clone[string](nil))
	})
}
