package validator_test

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/pkg/validator"
)

type color string

func (c color) Validate() error {
	if c != "red" && c != "blue" {
		return errors.New("unknown color")
	}
	return nil
}

type payload struct {
	Code   string          `json:"code" validate:"required,sku,nohyphenedge,nohyphenrun"`
	Label  string          `json:"label" validate:"notnumeric,categoryname"`
	Amount decimal.Decimal `json:"amount" validate:"dgte=0.01,dlte=100,dscale=2"`
	Color  color           `json:"color" validate:"enum"`
}

func valid() payload {
	return payload{
		Code:   "AB-12_C",
		Label:  "Home & Garden (Outdoor)",
		Amount: decimal.RequireFromString("10.50"),
		Color:  "red",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var verrs govalidator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = validator.ValidationErrorMessage(fe)
	}
	return out
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	t.Run("Should accept a valid payload", func(t *testing.T) {
		assert.NoError(t, v.Validate(valid()))
	})

	t.Run("Should report fields by json name", func(t *testing.T) {
		p := valid()
		p.Code = "ab"

		errs := fieldErrors(t, v.Validate(p))
		assert.Contains(t, errs, "code")
		assert.True(t, validator.IsValidationError(v.Validate(p)))
	})

	tests := []struct {
		name    string
		mutate  func(*payload)
		field   string
		message string
	}{
		{"lowercase sku", func(p *payload) { p.Code = "ab-1" }, "code", "must contain only uppercase letters, numbers, hyphens, and underscores"},
		{"leading hyphen", func(p *payload) { p.Code = "-AB" }, "code", "cannot start or end with a hyphen"},
		{"trailing hyphen", func(p *payload) { p.Code = "AB-" }, "code", "cannot start or end with a hyphen"},
		{"double hyphen", func(p *payload) { p.Code = "A--B" }, "code", "cannot contain consecutive hyphens"},
		{"numeric label", func(p *payload) { p.Label = "12345" }, "label", "cannot be only numbers"},
		{"bad label characters", func(p *payload) { p.Label = "Books!" }, "label", "contains invalid characters"},
		{"amount too small", func(p *payload) { p.Amount = decimal.Zero }, "amount", "must be greater than or equal to 0.01"},
		{"amount too large", func(p *payload) { p.Amount = decimal.RequireFromString("100.01") }, "amount", "must be less than or equal to 100"},
		{"amount scale", func(p *payload) { p.Amount = decimal.RequireFromString("1.234") }, "amount", "must have at most 2 decimal places"},
		{"unknown enum", func(p *payload) { p.Color = "green" }, "color", "invalid enum value: green"},
	}

	for _, tt := range tests {
		t.Run("Should reject "+tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)

			errs := fieldErrors(t, v.Validate(p))
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}
