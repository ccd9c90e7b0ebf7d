package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/gen"
)

func TestService_HandleResponseError(t *testing.T) {
	newService := func(logs *bytes.Buffer) *Service {
		return New(config.HTTP{}, slog.New(slog.NewJSONHandler(logs, nil)), nil, nil, nil)
	}

	t.Run("Should render the error while nothing is written", func(t *testing.T) {
		var logs bytes.Buffer
		rec := httptest.NewRecorder()
		w := chimiddleware.NewWrapResponseWriter(rec, 1)

		newService(&logs).handleResponseError(w, httptest.NewRequest(http.MethodGet, "/api/Products", nil), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","message":"an unknown error occurred"}`, rec.Body.String())
	})

	t.Run("Should only log once the response has started", func(t *testing.T) {
		var logs bytes.Buffer
		rec := httptest.NewRecorder()
		w := chimiddleware.NewWrapResponseWriter(rec, 1)

		require.NoError(t, gen.ListProducts200JSONResponse([]gen.ProductView{}).VisitListProductsResponse(w))
		newService(&logs).handleResponseError(w, httptest.NewRequest(http.MethodGet, "/api/Products", nil), errors.New("write: broken pipe"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Contains(t, logs.String(), "error writing response")
		assert.Contains(t, logs.String(), "broken pipe")
	})
}
