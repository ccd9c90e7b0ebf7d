package tagcache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/pkg/tagcache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCache(t *testing.T) {
	productList := tagcache.Tag{Type: "ProductList"}
	product1 := tagcache.Tag{Type: "Product", ID: "1"}
	product2 := tagcache.Tag{Type: "Product", ID: "2"}
	categoryList3 := tagcache.Tag{Type: "ProductList", ID: "category-3"}

	t.Run("Should invalidate only entries with the exact id tag", func(t *testing.T) {
		c := tagcache.New()
		c.Set("products/1", "one", 0, product1)
		c.Set("products/2", "two", 0, product2)

		assert.Equal(t, 1, c.Invalidate(product1))

		_, ok := c.Get("products/1")
		assert.False(t, ok)
		v, ok := tagcache.Load[string](c, "products/2")
		assert.True(t, ok)
		assert.Equal(t, "two", v)
	})

	t.Run("Should invalidate every id of a type-wide tag", func(t *testing.T) {
		c := tagcache.New()
		c.Set("products", []int{1, 2}, 0, productList, product1, product2)
		c.Set("products/category/3", []int{1}, 0, categoryList3, product1)
		c.Set("products/2", "two", 0, product2)

		assert.Equal(t, 2, c.Invalidate(productList))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Should drop entries after ttl", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(0, 0)}
		c := tagcache.New(tagcache.WithClock(clock.Now))
		c.Set("products", "list", 30*time.Second, productList)

		clock.Advance(29 * time.Second)
		_, ok := c.Get("products")
		assert.True(t, ok)

		clock.Advance(time.Second)
		_, ok = c.Get("products")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Should replace tags when a key is overwritten", func(t *testing.T) {
		c := tagcache.New()
		c.Set("k", "old", 0, product1)
		c.Set("k", "new", 0, product2)

		assert.Equal(t, 0, c.Invalidate(product1))
		assert.Equal(t, 1, c.Invalidate(product2))
	})

	t.Run("Should report type mismatch on typed load", func(t *testing.T) {
		c := tagcache.New()
		c.Set("k", 42, 0)

		_, ok := tagcache.Load[string](c, "k")
		assert.False(t, ok)
	})

	t.Run("Should format tags", func(t *testing.T) {
		assert.Equal(t, "ProductList", productList.String())
		assert.Equal(t, "ProductList:category-3", categoryList3.String())
	})
}
