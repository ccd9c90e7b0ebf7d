// Package memstore runs the in-memory store on hashicorp/go-memdb. Write
// transactions are serialised by go-memdb and readers work on immutable
// snapshots, so a long write never blocks a read. Row ids come from a
// per-table sequence kept in the same transaction, which makes them roll back
// together with the rows.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"
)

// IDIndex is the primary index every table declares.
const IDIndex = "id"

const sequencesTable = "sequences"

var ErrReadOnly = errors.New("write in read-only transaction")

type sequence struct {
	Table string
	Value int64
}

// Client wraps a go-memdb database.
type Client struct {
	db *memdb.MemDB
}

// New creates a database with tables, plus the table holding id sequences.
func New(tables ...*memdb.TableSchema) (*Client, error) {
	schema := &memdb.DBSchema{Tables: map[string]*memdb.TableSchema{
		sequencesTable: {
			Name: sequencesTable,
			Indexes: map[string]*memdb.IndexSchema{
				IDIndex: {Name: IDIndex, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Table"}},
			},
		},
	}}
	for _, t := range tables {
		schema.Tables[t.Name] = t
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("memstore new db: %w", err)
	}
	return &Client{db: db}, nil
}

// View runs fn against a read-only snapshot.
func (c *Client) View(ctx context.Context, fn func(tx *Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := c.db.Txn(false)
	defer txn.Abort()

	return fn(&Txn{txn: txn})
}

// Update runs fn in a write transaction that commits only if fn returns nil.
func (c *Client) Update(ctx context.Context, fn func(tx *Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := c.db.Txn(true)
	defer txn.Abort()

	if err := fn(&Txn{txn: txn, writable: true}); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// Txn is handed to View and Update callbacks. It must not be retained after
// the callback returns.
type Txn struct {
	txn      *memdb.Txn
	writable bool
}

func (tx *Txn) Writable() bool {
	return tx.writable
}

// NextID advances the id sequence of table.
func (tx *Txn) NextID(table string) (int64, error) {
	if !tx.writable {
		return 0, ErrReadOnly
	}

	seq, _, err := First[sequence](tx, sequencesTable, IDIndex, table)
	if err != nil {
		return 0, err
	}
	seq.Table = table
	seq.Value++

	if err := tx.txn.Insert(sequencesTable, &seq); err != nil {
		return 0, fmt.Errorf("memstore advance %s sequence: %w", table, err)
	}
	return seq.Value, nil
}

// Put inserts row or replaces the row with the same id.
func Put[T any](tx *Txn, table string, row T) error {
	if !tx.writable {
		return ErrReadOnly
	}
	if err := tx.txn.Insert(table, &row); err != nil {
		return fmt.Errorf("memstore put %s: %w", table, err)
	}
	return nil
}

// Delete removes row, matched by its id.
func Delete[T any](tx *Txn, table string, row T) error {
	if !tx.writable {
		return ErrReadOnly
	}
	if err := tx.txn.Delete(table, &row); err != nil {
		return fmt.Errorf("memstore delete %s: %w", table, err)
	}
	return nil
}

// First returns the first row of index matching args.
func First[T any](tx *Txn, table, index string, args ...any) (T, bool, error) {
	var zero T

	raw, err := tx.txn.First(table, index, args...)
	if err != nil {
		return zero, false, fmt.Errorf("memstore first %s.%s: %w", table, index, err)
	}
	if raw == nil {
		return zero, false, nil
	}
	return *raw.(*T), true, nil
}

// Select returns the rows of index matching args that match accepts, ordered
// by key. A nil match accepts every row. The rows are collected before
// returning, so callers may write to the table afterwards.
func Select[T any](tx *Txn, table, index string, key func(T) int64, match func(T) bool, args ...any) ([]T, error) {
	it, err := tx.txn.Get(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("memstore select %s.%s: %w", table, index, err)
	}

	rows := make([]T, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		row := *raw.(*T)
		if match == nil || match(row) {
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool { return key(rows[i]) < key(rows[j]) })
	return rows, nil
}
