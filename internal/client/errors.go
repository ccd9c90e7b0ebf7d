package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/product-inventory/internal/http/apierr"
)

// ErrNotFound matches any API error answered with 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer of the inventory API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []apierr.FieldError
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("inventory api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("inventory api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
