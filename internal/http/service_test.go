package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/product-inventory/api-contract"
	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	inventoryhttp "github.com/tuanvumaihuynh/product-inventory/internal/http"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
)

type unhealthy struct{}

func (unhealthy) IsHealthy(context.Context) (bool, error) {
	return false, errors.New("connection refused")
}

func newHandler(t *testing.T, health inventoryhttp.HealthChecker) http.Handler {
	t.Helper()

	v, err := service.NewValidator()
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	if health == nil {
		health = store
	}

	svc := inventoryhttp.New(
		config.HTTP{Swagger: true},
		log.Discard(),
		service.NewProductService(log.Discard(), store, v),
		service.NewCategoryService(log.Discard(), store, v),
		health,
	)
	h, err := svc.Handler()
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v), resp.Body.String())
	return v
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, resp).Code
}

func productBody(name, sku string) map[string]any {
	return map[string]any{
		"name":     name,
		"sku":      sku,
		"quantity": 25,
		"price":    19.99,
		"status":   "InStock",
	}
}

func createCategory(t *testing.T, h http.Handler, name string) int64 {
	t.Helper()

	resp := do(t, h, http.MethodPost, "/api/ProductCategories", map[string]any{
		"name":     name,
		"isActive": true,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	return decode[int64](t, resp)
}

func createProduct(t *testing.T, h http.Handler, body map[string]any) int64 {
	t.Helper()

	resp := do(t, h, http.MethodPost, "/api/Products", body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	return decode[int64](t, resp)
}

func TestHealth(t *testing.T) {
	t.Run("Should report ok when the store answers", func(t *testing.T) {
		resp := do(t, newHandler(t, nil), http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	})

	t.Run("Should report unavailable when the store fails", func(t *testing.T) {
		resp := do(t, newHandler(t, unhealthy{}), http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
		assert.Equal(t, "STORE_UNAVAILABLE", errorCode(t, resp))
	})
}

func TestMiddlewares(t *testing.T) {
	h := newHandler(t, nil)

	t.Run("Should echo the correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/Products", nil)
		req.Header.Set("X-Correlation-ID", "abc-123")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.Equal(t, "abc-123", resp.Header().Get("X-Correlation-ID"))
	})

	t.Run("Should generate a correlation id when missing", func(t *testing.T) {
		resp := do(t, h, http.MethodGet, "/api/Products", nil)

		assert.NotEmpty(t, resp.Header().Get("X-Correlation-ID"))
	})

	t.Run("Should expose metrics labelled by route pattern", func(t *testing.T) {
		do(t, h, http.MethodGet, "/api/Products/42", nil)

		resp := do(t, h, http.MethodGet, "/metrics", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `route="/api/Products/{id}"`)
	})

	t.Run("Should serve the api docs", func(t *testing.T) {
		resp := do(t, h, http.MethodGet, "/docs/openapi.json", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

// Every registered route must be described by the OpenAPI document and every
// documented operation must be routed.
func TestRoutesMatchContract(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	routes, ok := newHandler(t, nil).(chi.Routes)
	require.True(t, ok)

	registered := make(map[string]bool)
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == "/metrics" || strings.HasPrefix(route, "/docs") {
			return nil
		}
		registered[method+" "+route] = true

		item := doc.Paths.Find(route)
		if assert.NotNil(t, item, "route %s is not documented", route) {
			assert.NotNil(t, item.GetOperation(method), "operation %s %s is not documented", method, route)
		}
		return nil
	})
	require.NoError(t, err)

	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			assert.True(t, registered[method+" "+path], "operation %s %s is not routed", method, path)
		}
	}
}
