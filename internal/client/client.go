// Package client is a typed client of the inventory REST API. Query results
// are cached under the tags their data depends on and mutations drop the tags
// they invalidate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tuanvumaihuynh/product-inventory/internal/cachetag"
	"github.com/tuanvumaihuynh/product-inventory/internal/config"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/correlationid"
	"github.com/tuanvumaihuynh/product-inventory/pkg/tagcache"
)

const (
	ProductTTL  = 30 * time.Second
	CategoryTTL = 60 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *tagcache.Cache
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithCache(cache *tagcache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg config.Client, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   tagcache.New(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "inventory-client"))
	return c
}

// InvalidateTags drops cached entries for tags in their wire form, as carried
// by cache invalidation events.
func (c *Client) InvalidateTags(tags ...string) int {
	parsed := make([]tagcache.Tag, len(tags))
	for i, t := range tags {
		parsed[i] = cachetag.Parse(t)
	}
	return c.invalidate(parsed)
}

func (c *Client) invalidate(tags []tagcache.Tag) int {
	n := c.cache.Invalidate(tags...)
	c.logger.Debug("cache invalidated",
		slog.Any("tags", cachetag.Strings(tags)),
		slog.Int("entries", n))
	return n
}

// Health returns nil when the API reports a reachable store.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// Products

func (c *Client) ListProducts(ctx context.Context) ([]service.ProductView, error) {
	return getCached(ctx, c, "/api/Products", ProductTTL, staticTags[[]service.ProductView](cachetag.AllProducts()))
}

func (c *Client) GetProduct(ctx context.Context, id int64) (service.ProductView, error) {
	return getCached(ctx, c, "/api/Products/"+formatID(id), ProductTTL, staticTags[service.ProductView](cachetag.Product(id)))
}

func (c *Client) GetProductBySku(ctx context.Context, sku string) (service.ProductView, error) {
	path := "/api/Products/sku/" + url.PathEscape(service.NormalizeSku(sku))
	return getCached(ctx, c, path, ProductTTL, func(p service.ProductView) []tagcache.Tag {
		return []tagcache.Tag{cachetag.Product(p.ID)}
	})
}

func (c *Client) ListProductsByStatus(ctx context.Context, status model.ProductStatus) ([]service.ProductView, error) {
	path := "/api/Products/status/" + url.PathEscape(string(status))
	return getCached(ctx, c, path, ProductTTL, staticTags[[]service.ProductView](cachetag.ProductsByStatus(status)))
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int64) ([]service.ProductView, error) {
	path := "/api/Products/category/" + formatID(categoryID)
	return getCached(ctx, c, path, ProductTTL, staticTags[[]service.ProductView](cachetag.ProductsByCategory(categoryID)))
}

func (c *Client) ListLowStock(ctx context.Context, threshold int) ([]service.LowStockAlert, error) {
	path := "/api/Products/low-stock?threshold=" + strconv.Itoa(threshold)
	return getCached(ctx, c, path, ProductTTL, staticTags[[]service.LowStockAlert](cachetag.AllProducts()))
}

func (c *Client) CreateProduct(ctx context.Context, params service.ProductParams) (int64, error) {
	var id int64
	if err := c.do(ctx, http.MethodPost, "/api/Products", params, &id); err != nil {
		return 0, err
	}
	c.invalidate(cachetag.ProductCreated(params.CategoryID))
	return id, nil
}

func (c *Client) UpdateProduct(ctx context.Context, params service.UpdateProductParams) error {
	if err := c.do(ctx, http.MethodPut, "/api/Products/"+formatID(params.ID), params, nil); err != nil {
		return err
	}
	c.invalidate(cachetag.ProductUpdated(params.ID, params.CategoryID))
	return nil
}

func (c *Client) UpdateInventory(ctx context.Context, params service.UpdateInventoryParams) error {
	path := "/api/Products/" + formatID(params.ID) + "/inventory"
	if err := c.do(ctx, http.MethodPatch, path, params, nil); err != nil {
		return err
	}
	c.invalidate(cachetag.InventoryUpdated(params.ID))
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/api/Products/"+formatID(id), nil, nil); err != nil {
		return err
	}
	c.invalidate(cachetag.ProductDeleted(id))
	return nil
}

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]service.CategoryListView, error) {
	return getCached(ctx, c, "/api/ProductCategories", CategoryTTL, staticTags[[]service.CategoryListView](cachetag.CategoryList()))
}

func (c *Client) GetCategory(ctx context.Context, id int64) (service.CategoryDetailView, error) {
	return getCached(ctx, c, "/api/ProductCategories/"+formatID(id), CategoryTTL,
		staticTags[service.CategoryDetailView](cachetag.Category(id), cachetag.ProductsByCategory(id)))
}

func (c *Client) ListCategoryProducts(ctx context.Context, id int64) ([]service.ProductView, error) {
	return getCached(ctx, c, "/api/ProductCategories/"+formatID(id)+"/products", ProductTTL,
		staticTags[[]service.ProductView](cachetag.Category(id), cachetag.ProductsByCategory(id)))
}

func (c *Client) CreateCategory(ctx context.Context, params service.ProductCategoryParams) (int64, error) {
	var id int64
	if err := c.do(ctx, http.MethodPost, "/api/ProductCategories", params, &id); err != nil {
		return 0, err
	}
	c.invalidate(cachetag.CategoryCreated())
	return id, nil
}

func (c *Client) UpdateCategory(ctx context.Context, params service.UpdateProductCategoryParams) error {
	if err := c.do(ctx, http.MethodPut, "/api/ProductCategories/"+formatID(params.ID), params, nil); err != nil {
		return err
	}
	c.invalidate(cachetag.CategoryUpdated(params.ID))
	return nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/api/ProductCategories/"+formatID(id), nil, nil); err != nil {
		return err
	}
	c.invalidate(cachetag.CategoryDeleted(id))
	return nil
}

// getCached serves path from the cache or fetches and stores it. Cached
// values are shared and must not be modified.
func getCached[T any](
	ctx context.Context,
	c *Client,
	path string,
	ttl time.Duration,
	tagsFor func(T) []tagcache.Tag,
) (T, error) {
	if v, ok := tagcache.Load[T](c.cache, path); ok {
		return v, nil
	}

	var out T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return out, err
	}
	c.cache.Set(path, out, ttl, tagsFor(out)...)
	return out, nil
}

func staticTags[T any](tags ...tagcache.Tag) func(T) []tagcache.Tag {
	return func(T) []tagcache.Tag { return tags }
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := correlationid.FromContext(ctx); ok {
		req.Header.Set(correlationid.Header, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body apierr.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if body.Details != nil {
			apiErr.Details = *body.Details
		}
	}
	return apiErr
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
