package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	AlphaNumberSpaceRegex = regexp.MustCompile("^[a-zA-Z0-9 ]+$")
	SkuRegex              = regexp.MustCompile(`^[A-Z0-9_-]+$`)
	CategoryNameRegex     = regexp.MustCompile(`^[a-zA-Z0-9\s\-_&()]+$`)
	NumericRegex          = regexp.MustCompile(`^\d+$`)
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// It returns a new DefaultValidator and an error if the validator registration fails.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	// Report fields by their JSON name so messages match the wire payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Decimals are validated through their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	customs := map[string]validator.Func{
		"alphanumspace": validateAlphanumspace,
		"enum":          validateEnum,
		"sku":           validateSku,
		"nohyphenedge":  validateNoHyphenEdge,
		"nohyphenrun":   validateNoHyphenRun,
		"categoryname":  validateCategoryName,
		"notnumeric":    validateNotNumeric,
		"dgte":          validateDecimalGte,
		"dlte":          validateDecimalLte,
		"dscale":        validateDecimalScale,
	}
	for tag, fn := range customs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s validator: %w", tag, err)
		}
	}

	return &DefaultValidator{v: v}, nil
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// RegisterStructValidation registers a cross-field rule for the given types.
func (v DefaultValidator) RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	v.v.RegisterStructValidation(fn, types...)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "dgte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte", "dlte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "dscale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "alphanumspace":
		return "must contain only alphanumeric characters and spaces"
	case "sku":
		return "must contain only uppercase letters, numbers, hyphens, and underscores"
	case "nohyphenedge":
		return "cannot start or end with a hyphen"
	case "nohyphenrun":
		return "cannot contain consecutive hyphens"
	case "categoryname":
		return "contains invalid characters"
	case "notnumeric":
		return "cannot be only numbers"
	case "ip":
		return "must be a valid IP address"
	case "enum":
		return fmt.Sprintf("invalid enum value: %v", fe.Value())
	case "sort":
		return fmt.Sprintf("must contain only allowed sort fields: [%s]", fe.Param())
	case "outofstockqty":
		return "out of stock products should have quantity set to 0"
	case "preorderqty":
		return "pre-order products should not have current stock quantity"
	default:
		return "is invalid"
	}
}

func validateAlphanumspace(fl validator.FieldLevel) bool {
	return AlphaNumberSpaceRegex.MatchString(fl.Field().String())
}

func validateEnum(fl validator.FieldLevel) bool {
	type Enum interface {
		Validate() error
	}

	value, ok := fl.Field().Interface().(Enum)
	if !ok {
		return false
	}

	return value.Validate() == nil
}

func validateSku(fl validator.FieldLevel) bool {
	return SkuRegex.MatchString(fl.Field().String())
}

func validateNoHyphenEdge(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return !strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}

func validateNoHyphenRun(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), "--")
}

func validateCategoryName(fl validator.FieldLevel) bool {
	return CategoryNameRegex.MatchString(fl.Field().String())
}

func validateNotNumeric(fl validator.FieldLevel) bool {
	return !NumericRegex.MatchString(fl.Field().String())
}

func decimalOperands(fl validator.FieldLevel) (decimal.Decimal, decimal.Decimal, bool) {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("invalid decimal validator param %q", fl.Param()))
	}
	return value, bound, true
}

func validateDecimalGte(fl validator.FieldLevel) bool {
	value, bound, ok := decimalOperands(fl)
	return ok && value.GreaterThanOrEqual(bound)
}

func validateDecimalLte(fl validator.FieldLevel) bool {
	value, bound, ok := decimalOperands(fl)
	return ok && value.LessThanOrEqual(bound)
}

func validateDecimalScale(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("invalid dscale param %q", fl.Param()))
	}
	return value.Equal(value.Round(int32(places)))
}
