package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-inventory/internal/http/metric"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-inventory/internal/log"
	"github.com/tuanvumaihuynh/product-inventory/pkg/correlationid"
)

func TestRecoverer(t *testing.T) {
	h := middleware.Recoverer(log.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	t.Run("Should render a json 500 on panic", func(t *testing.T) {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","message":"an unknown error occurred"}`, resp.Body.String())
	})
}

func TestCorrelationID(t *testing.T) {
	var seen string
	h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = correlationid.FromContext(r.Context())
	}))

	t.Run("Should reuse the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlationid.Header, "abc")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", resp.Header().Get(correlationid.Header))
	})

	t.Run("Should replace an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlationid.Header, strings.Repeat("x", 200))
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, resp.Header().Get(correlationid.Header))
	})
}

func TestMetrics(t *testing.T) {
	m := metric.New()
	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle(middleware.MetricsPath, m.Handler())

	t.Run("Should label requests by route pattern and status", func(t *testing.T) {
		for _, id := range []string{"1", "2"} {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		}

		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, middleware.MetricsPath, nil))
		require.Equal(t, http.StatusOK, resp.Code)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `route="/items/{id}",status="418"} 2`)
		assert.NotContains(t, string(body), `route="/metrics"`)
	})
}

func TestTrackStatus(t *testing.T) {
	t.Run("Should report a started response", func(t *testing.T) {
		var before, after bool
		h := middleware.TrackStatus()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			before = middleware.HeaderWritten(w)
			w.WriteHeader(http.StatusNoContent)
			after = middleware.HeaderWritten(w)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, before)
		assert.True(t, after)
	})

	t.Run("Should not know about a bare writer", func(t *testing.T) {
		resp := httptest.NewRecorder()
		resp.WriteHeader(http.StatusOK)

		assert.False(t, middleware.HeaderWritten(resp))
	})
}
