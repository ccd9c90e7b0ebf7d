package repository

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/storage/db"
)

func TestDecimalNumericConversion(t *testing.T) {
	tests := []struct {
		name  string
		price string
		coef  int64
		exp   int32
	}{
		{name: "Should keep two fractional digits", price: "19.99", coef: 1999, exp: -2},
		{name: "Should keep zero", price: "0", coef: 0, exp: 0},
		{name: "Should keep whole amounts", price: "250", coef: 250, exp: 0},
		{name: "Should keep the largest allowed price", price: "999999.99", coef: 99999999, exp: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.price)

			n := decimalToNumeric(in)
			assert.True(t, n.Valid)
			assert.Equal(t, tt.coef, n.Int.Int64())
			assert.Equal(t, tt.exp, n.Exp)

			out, err := numericToDecimal(n)
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "got %s", out)
		})
	}
}

func TestNumericToDecimal_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		n    pgtype.Numeric
	}{
		{name: "Should reject null", n: pgtype.Numeric{}},
		{name: "Should reject NaN", n: pgtype.Numeric{Valid: true, NaN: true}},
		{name: "Should reject infinity", n: pgtype.Numeric{Valid: true, Int: big.NewInt(1), InfinityModifier: pgtype.Infinity}},
		{name: "Should reject a missing coefficient", n: pgtype.Numeric{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := numericToDecimal(tt.n)
			assert.Error(t, err)
		})
	}
}

func TestTranslatePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "Should map unique violations to ErrDuplicate",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: db.UniqueViolationCode}),
			want: ErrDuplicate,
		},
		{
			name: "Should map foreign key violations to ErrForeignKey",
			err:  &pgconn.PgError{Code: db.ForeignKeyViolationCode},
			want: ErrForeignKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translatePgError(tt.err)
			assert.ErrorIs(t, got, tt.want)

			var pgErr *pgconn.PgError
			assert.ErrorAs(t, got, &pgErr)
		})
	}

	t.Run("Should pass other errors through", func(t *testing.T) {
		check := &pgconn.PgError{Code: "23514"}
		assert.Same(t, error(check), translatePgError(check))

		plain := errors.New("conn reset")
		got := translatePgError(plain)
		assert.Equal(t, plain, got)
		assert.False(t, errors.Is(got, ErrDuplicate) || errors.Is(got, ErrForeignKey))
	})
}

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

func TestScanProduct(t *testing.T) {
	t.Run("Should map no rows to ErrNotFound", func(t *testing.T) {
		_, err := scanProduct(scanFunc(func(...any) error { return pgx.ErrNoRows }))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should convert price and status", func(t *testing.T) {
		row := scanFunc(func(dest ...any) error {
			*dest[0].(*int64) = 3
			*dest[1].(*string) = "Mouse"
			*dest[2].(*string) = "MS-1"
			*dest[3].(*int) = 4
			*dest[4].(*pgtype.Numeric) = pgtype.Numeric{Int: big.NewInt(1990), Exp: -2, Valid: true}
			*dest[5].(*string) = "PreOrder"
			return nil
		})

		p, err := scanProduct(row)
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.ID)
		assert.Equal(t, "19.9", p.Price.String())
		assert.Equal(t, "PreOrder", p.Status.String())
		assert.Nil(t, p.CategoryID)
	})
}
