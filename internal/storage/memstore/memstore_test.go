package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/storage/memstore"
)

type item struct {
	ID   int64
	Name string
}

const items = "items"

func itemID(i item) int64 { return i.ID }

func newClient(t *testing.T) *memstore.Client {
	t.Helper()

	c, err := memstore.New(&memdb.TableSchema{
		Name: items,
		Indexes: map[string]*memdb.IndexSchema{
			memstore.IDIndex: {Name: memstore.IDIndex, Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
			"name":           {Name: "name", Indexer: &memdb.StringFieldIndex{Field: "Name"}},
		},
	})
	require.NoError(t, err)
	return c
}

func insert(t *testing.T, c *memstore.Client, name string) item {
	t.Helper()

	var row item
	require.NoError(t, c.Update(context.Background(), func(tx *memstore.Txn) error {
		id, err := tx.NextID(items)
		if err != nil {
			return err
		}
		row = item{ID: id, Name: name}
		return memstore.Put(tx, items, row)
	}))
	return row
}

func all(t *testing.T, c *memstore.Client) []item {
	t.Helper()

	var rows []item
	require.NoError(t, c.View(context.Background(), func(tx *memstore.Txn) error {
		var err error
		rows, err = memstore.Select(tx, items, memstore.IDIndex, itemID, nil)
		return err
	}))
	return rows
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign increasing ids that are not reused", func(t *testing.T) {
		c := newClient(t)
		a := insert(t, c, "a")
		b := insert(t, c, "b")

		require.NoError(t, c.Update(ctx, func(tx *memstore.Txn) error {
			return memstore.Delete(tx, items, b)
		}))
		d := insert(t, c, "d")

		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.Equal(t, int64(3), d.ID)
	})

	t.Run("Should roll back rows and ids when the callback fails", func(t *testing.T) {
		c := newClient(t)
		a := insert(t, c, "a")
		boom := errors.New("boom")

		err := c.Update(ctx, func(tx *memstore.Txn) error {
			if err := memstore.Put(tx, items, item{ID: a.ID, Name: "changed"}); err != nil {
				return err
			}
			if _, err := tx.NextID(items); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		assert.Equal(t, []item{{1, "a"}}, all(t, c))
		assert.Equal(t, int64(2), insert(t, c, "b").ID)
	})

	t.Run("Should refuse writes in view", func(t *testing.T) {
		c := newClient(t)

		err := c.View(ctx, func(tx *memstore.Txn) error {
			assert.False(t, tx.Writable())
			return memstore.Put(tx, items, item{ID: 1})
		})
		assert.ErrorIs(t, err, memstore.ErrReadOnly)

		err = c.View(ctx, func(tx *memstore.Txn) error {
			_, err := tx.NextID(items)
			return err
		})
		assert.ErrorIs(t, err, memstore.ErrReadOnly)
	})

	t.Run("Should select by index in key order", func(t *testing.T) {
		c := newClient(t)
		for _, name := range []string{"x", "y", "x"} {
			insert(t, c, name)
		}

		require.NoError(t, c.View(ctx, func(tx *memstore.Txn) error {
			rows, err := memstore.Select(tx, items, "name", itemID, nil, "x")
			require.NoError(t, err)
			assert.Equal(t, []item{{1, "x"}, {3, "x"}}, rows)

			rows, err = memstore.Select(tx, items, memstore.IDIndex, itemID, func(i item) bool { return i.ID > 1 })
			require.NoError(t, err)
			assert.Equal(t, []item{{2, "y"}, {3, "x"}}, rows)

			got, ok, err := memstore.First[item](tx, items, memstore.IDIndex, int64(2))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "y", got.Name)

			_, ok, err = memstore.First[item](tx, items, memstore.IDIndex, int64(9))
			require.NoError(t, err)
			assert.False(t, ok)
			return nil
		}))
	})

	t.Run("Should honour cancelled context", func(t *testing.T) {
		c := newClient(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, c.Update(cctx, func(*memstore.Txn) error { return nil }), context.Canceled)
		assert.ErrorIs(t, c.View(cctx, func(*memstore.Txn) error { return nil }), context.Canceled)
	})

	t.Run("Should read while a write is in flight", func(t *testing.T) {
		c := newClient(t)
		insert(t, c, "a")

		started := make(chan struct{})
		release := make(chan struct{})
		writeDone := make(chan error, 1)
		go func() {
			writeDone <- c.Update(ctx, func(tx *memstore.Txn) error {
				close(started)
				<-release
				return memstore.Put(tx, items, item{ID: 1, Name: "late"})
			})
		}()
		<-started

		readDone := make(chan []item, 1)
		go func() {
			var rows []item
			_ = c.View(ctx, func(tx *memstore.Txn) error {
				var err error
				rows, err = memstore.Select(tx, items, memstore.IDIndex, itemID, nil)
				return err
			})
			readDone <- rows
		}()

		select {
		case rows := <-readDone:
			assert.Equal(t, []item{{1, "a"}}, rows)
		case <-time.After(time.Second):
			t.Fatal("read blocked behind the write transaction")
		}

		close(release)
		require.NoError(t, <-writeDone)
		assert.Equal(t, []item{{1, "late"}}, all(t, c))
	})

	t.Run("Should serialise concurrent writers", func(t *testing.T) {
		c := newClient(t)

		var wg sync.WaitGroup
		for range 50 {
			wg.Go(func() {
				err := c.Update(ctx, func(tx *memstore.Txn) error {
					id, err := tx.NextID(items)
					if err != nil {
						return err
					}
					return memstore.Put(tx, items, item{ID: id})
				})
				assert.NoError(t, err)
			})
		}
		wg.Wait()

		rows := all(t, c)
		require.Len(t, rows, 50)
		assert.Equal(t, int64(50), rows[49].ID)
	})
}
