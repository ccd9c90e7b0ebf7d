package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler(t *testing.T) {
	t.Run("Should create and list categories with product counts", func(t *testing.T) {
		h := newHandler(t, nil)
		id := createCategory(t, h, "Electronics")
		createCategory(t, h, "Books")
		body := productBody("Wireless Mouse", "WM-001")
		body["categoryId"] = id
		createProduct(t, h, body)

		resp := do(t, h, http.MethodGet, "/api/ProductCategories", nil)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, fmt.Sprintf(`[
			{"id": %d, "name": "Electronics", "description": null, "isActive": true, "productCount": 1},
			{"id": %d, "name": "Books", "description": null, "isActive": true, "productCount": 0}
		]`, id, id+1), resp.Body.String())
	})

	t.Run("Should reject a duplicate name", func(t *testing.T) {
		h := newHandler(t, nil)
		createCategory(t, h, "Electronics")

		resp := do(t, h, http.MethodPost, "/api/ProductCategories", map[string]any{
			"name":     "Electronics",
			"isActive": true,
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, "CATEGORY_NAME_CONFLICT", errorCode(t, resp))
	})

	t.Run("Should require isActive", func(t *testing.T) {
		resp := do(t, newHandler(t, nil), http.MethodPost, "/api/ProductCategories", map[string]any{
			"name": "Electronics",
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, resp))
	})

	t.Run("Should get a category with its products", func(t *testing.T) {
		h := newHandler(t, nil)
		id := createCategory(t, h, "Electronics")
		body := productBody("Wireless Mouse", "WM-001")
		body["categoryId"] = id
		createProduct(t, h, body)

		resp := do(t, h, http.MethodGet, fmt.Sprintf("/api/ProductCategories/%d", id), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		detail := decode[map[string]any](t, resp)
		assert.Equal(t, "Electronics", detail["name"])
		assert.Len(t, detail["products"], 1)

		resp = do(t, h, http.MethodGet, fmt.Sprintf("/api/ProductCategories/%d/products", id), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, decode[[]map[string]any](t, resp), 1)
	})

	t.Run("Should return not found for a missing category", func(t *testing.T) {
		resp := do(t, newHandler(t, nil), http.MethodGet, "/api/ProductCategories/42", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "CATEGORY_NOT_FOUND", errorCode(t, resp))
	})

	t.Run("Should update a category", func(t *testing.T) {
		h := newHandler(t, nil)
		id := createCategory(t, h, "Electronics")

		resp := do(t, h, http.MethodPut, fmt.Sprintf("/api/ProductCategories/%d", id), map[string]any{
			"id":          id,
			"name":        "Gadgets",
			"description": "Small devices",
			"isActive":    false,
		})
		require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

		detail := decode[map[string]any](t, do(t, h, http.MethodGet, fmt.Sprintf("/api/ProductCategories/%d", id), nil))
		assert.Equal(t, "Gadgets", detail["name"])
		assert.Equal(t, "Small devices", detail["description"])
		assert.Equal(t, false, detail["isActive"])
	})

	t.Run("Should reject an id mismatch", func(t *testing.T) {
		h := newHandler(t, nil)
		id := createCategory(t, h, "Electronics")

		resp := do(t, h, http.MethodPut, fmt.Sprintf("/api/ProductCategories/%d", id), map[string]any{
			"id":       id + 1,
			"name":     "Gadgets",
			"isActive": true,
		})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "ID_MISMATCH", errorCode(t, resp))
	})

	t.Run("Should delete a category and detach its products", func(t *testing.T) {
		h := newHandler(t, nil)
		id := createCategory(t, h, "Electronics")
		body := productBody("Wireless Mouse", "WM-001")
		body["categoryId"] = id
		productID := createProduct(t, h, body)

		resp := do(t, h, http.MethodDelete, fmt.Sprintf("/api/ProductCategories/%d", id), nil)
		require.Equal(t, http.StatusNoContent, resp.Code)

		resp = do(t, h, http.MethodGet, fmt.Sprintf("/api/ProductCategories/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)

		product := decode[map[string]any](t, do(t, h, http.MethodGet, fmt.Sprintf("/api/Products/%d", productID), nil))
		assert.Nil(t, product["categoryId"])
		assert.Nil(t, product["categoryName"])
	})
}
