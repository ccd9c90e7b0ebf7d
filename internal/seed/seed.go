// Package seed fills an empty store with a demo catalogue.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/repository"
)

type category struct {
	name        string
	description string
	products    []product
}

type product struct {
	name        string
	sku         string
	quantity    int
	price       string
	status      model.ProductStatus
	description string
}

var catalogue = []category{
	{
		name:        "Electronics",
		description: "Electronic devices, gadgets, and accessories",
		products: []product{
			{"iPhone 15 Pro", "ELEC-001", 25, "999.99", model.ProductStatusInStock, "Latest iPhone with titanium design and A17 Pro chip"},
			{"Samsung 4K Smart TV", "ELEC-002", 15, "799.99", model.ProductStatusInStock, "55-inch 4K UHD Smart TV with HDR support"},
			{"MacBook Air M3", "ELEC-003", 8, "1299.99", model.ProductStatusInStock, "13-inch MacBook Air with M3 chip and 16GB RAM"},
			{"Sony WH-1000XM5", "ELEC-004", 0, "399.99", model.ProductStatusOutOfStock, "Premium noise-canceling wireless headphones"},
		},
	},
	{
		name:        "Clothing",
		description: "Apparel, shoes, and fashion accessories",
		products: []product{
			{"Nike Air Max 270", "CLTH-001", 45, "149.99", model.ProductStatusInStock, "Men's running shoes with Max Air unit"},
			{"Levi's 501 Jeans", "CLTH-002", 30, "89.99", model.ProductStatusInStock, "Original fit classic blue jeans"},
			{"Patagonia Jacket", "CLTH-003", 12, "299.99", model.ProductStatusInStock, "Waterproof outdoor hiking jacket"},
			// Pre-order stock must be zero.
			{"Champion Hoodie", "CLTH-004", 0, "59.99", model.ProductStatusPreOrder, "Comfortable cotton blend pullover hoodie"},
		},
	},
	{
		name:        "Home & Garden",
		description: "Home improvement, furniture, and garden supplies",
		products: []product{
			{"Dyson V15 Detect", "HOME-001", 18, "749.99", model.ProductStatusInStock, "Cordless vacuum with laser dust detection"},
			{"KitchenAid Stand Mixer", "HOME-002", 22, "379.99", model.ProductStatusInStock, "5-quart artisan series stand mixer"},
			{"IKEA MALM Dresser", "HOME-003", 0, "179.99", model.ProductStatusOutOfStock, "6-drawer dresser in white oak veneer"},
			{"Weber Genesis Grill", "HOME-004", 7, "899.99", model.ProductStatusInStock, "3-burner gas grill with side burner"},
		},
	},
	{
		name:        "Sports & Fitness",
		description: "Sports equipment, fitness gear, and outdoor activities",
		products: []product{
			{"Peloton Bike+", "SPRT-001", 3, "2495.00", model.ProductStatusInStock, "Indoor cycling bike with rotating touchscreen"},
			{"Nike Dri-FIT Shorts", "SPRT-002", 60, "34.99", model.ProductStatusInStock, "Men's 7-inch running shorts with pockets"},
			{"Bowflex Dumbbells", "SPRT-003", 14, "599.99", model.ProductStatusInStock, "Adjustable dumbbells 5-52.5 lbs"},
			{"Yeti Rambler Bottle", "SPRT-004", 35, "44.99", model.ProductStatusInStock, "32oz insulated water bottle"},
		},
	},
	{
		name:        "Books & Media",
		description: "Books, magazines, movies, and digital media",
		products: []product{
			{"The Seven Husbands of Evelyn Hugo", "BOOK-001", 28, "16.99", model.ProductStatusInStock, "Bestselling novel by Taylor Jenkins Reid"},
			{"PlayStation 5", "BOOK-002", 0, "499.99", model.ProductStatusOutOfStock, "Next-gen gaming console with 4K gaming"},
			{"Kindle Paperwhite", "BOOK-003", 40, "139.99", model.ProductStatusInStock, "Waterproof e-reader with adjustable warm light"},
			{"Spotify Premium Gift Card", "BOOK-004", 100, "99.99", model.ProductStatusInStock, "12-month subscription gift card"},
		},
	},
}

// Products returns the seed products without ids or category references.
func Products() []model.Product {
	var out []model.Product
	for _, c := range catalogue {
		for _, p := range c.products {
			out = append(out, p.model(nil))
		}
	}
	return out
}

func (p product) model(categoryID *int64) model.Product {
	description := p.description
	return model.Product{
		Name:        p.name,
		Sku:         p.sku,
		Quantity:    p.quantity,
		Price:       decimal.RequireFromString(p.price),
		Status:      p.status,
		Description: &description,
		CategoryID:  categoryID,
	}
}

// Run seeds the catalogue in one transaction unless the store already holds
// categories or products. It reports whether anything was written.
func Run(ctx context.Context, logger *slog.Logger, store repository.Store) (bool, error) {
	var seeded bool

	err := store.WithTx(ctx, func(tx repository.Store) error {
		categories, err := tx.Categories().ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("category repository list categories: %w", err)
		}
		products, err := tx.Products().ListProducts(ctx, repository.ProductFilter{})
		if err != nil {
			return fmt.Errorf("product repository list products: %w", err)
		}
		if len(categories) > 0 || len(products) > 0 {
			return nil
		}

		for _, c := range catalogue {
			description := c.description
			categoryID, err := tx.Categories().CreateCategory(ctx, model.ProductCategory{
				Name:        c.name,
				Description: &description,
				IsActive:    true,
			})
			if err != nil {
				return fmt.Errorf("category repository create category %q: %w", c.name, err)
			}

			for _, p := range c.products {
				if _, err := tx.Products().CreateProduct(ctx, p.model(&categoryID)); err != nil {
					return fmt.Errorf("product repository create product %q: %w", p.sku, err)
				}
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("store with tx: %w", err)
	}

	if seeded {
		logger.InfoContext(ctx, "store seeded", slog.Int("categories", len(catalogue)), slog.Int("products", len(Products())))
	}
	return seeded, nil
}
