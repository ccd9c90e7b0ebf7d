package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/product-inventory/internal/model"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func newProductCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products", "p"},
		Short:   "Query and change products",
	}
	cmd.AddCommand(
		newProductListCmd(a),
		newProductGetCmd(a),
		newProductLowStockCmd(a),
		newProductCreateCmd(a),
		newProductUpdateCmd(a),
		newProductStockCmd(a),
		newProductDeleteCmd(a),
	)
	return cmd
}

func newProductListCmd(a *app) *cobra.Command {
	var (
		status     string
		categoryID int64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally by status or category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status != "" && categoryID != 0 {
				return fmt.Errorf("--status and --category cannot be combined")
			}

			var (
				products []service.ProductView
				err      error
			)
			switch {
			case status != "":
				s, perr := model.ParseProductStatus(status)
				if perr != nil {
					return perr
				}
				products, err = a.client.ListProductsByStatus(cmd.Context(), s)
			case categoryID != 0:
				products, err = a.client.ListProductsByCategory(cmd.Context(), categoryID)
			default:
				products, err = a.client.ListProducts(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.printProducts(products)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only products with this status")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "only products of this category")
	return cmd
}

func newProductGetCmd(a *app) *cobra.Command {
	var bySku bool
	cmd := &cobra.Command{
		Use:   "get <id|sku>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				product service.ProductView
				err     error
			)
			if bySku {
				product, err = a.client.GetProductBySku(cmd.Context(), args[0])
			} else {
				id, perr := parseID(args[0])
				if perr != nil {
					return perr
				}
				product, err = a.client.GetProduct(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			return a.printProduct(product)
		},
	}
	cmd.Flags().BoolVar(&bySku, "sku", false, "look the product up by SKU")
	return cmd
}

func newProductLowStockCmd(a *app) *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List in-stock products at or below a quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alerts, err := a.client.ListLowStock(cmd.Context(), threshold)
			if err != nil {
				return err
			}
			return a.printLowStock(alerts)
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", service.DefaultLowStockThreshold, "quantity at or below which a product is low")
	return cmd
}

// productFlags holds the writable product fields as command flags.
type productFlags struct {
	name        string
	sku         string
	quantity    int
	price       string
	status      string
	description string
	categoryID  int64
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.sku, "sku", "", "stock keeping unit")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "units in stock")
	cmd.Flags().StringVar(&f.price, "price", "", "unit price, e.g. 19.99")
	cmd.Flags().StringVar(&f.status, "status", string(model.ProductStatusInStock), "InStock, OutOfStock, Discontinued or PreOrder")
	cmd.Flags().StringVar(&f.description, "description", "", "free text description")
	cmd.Flags().Int64Var(&f.categoryID, "category", 0, "category id, 0 for none")
}

// apply overwrites the fields of params whose flags were set on cmd.
func (f *productFlags) apply(cmd *cobra.Command, params *service.ProductParams) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		params.Name = f.name
	}
	if changed("sku") {
		params.Sku = f.sku
	}
	if changed("quantity") {
		params.Quantity = f.quantity
	}
	if changed("price") {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("invalid --price: %w", err)
		}
		params.Price = price
	}
	if changed("status") {
		status, err := model.ParseProductStatus(f.status)
		if err != nil {
			return err
		}
		params.Status = status
	}
	if changed("description") {
		params.Description = ptr.New(f.description)
	}
	if changed("category") {
		params.CategoryID = nil
		if f.categoryID != 0 {
			params.CategoryID = ptr.New(f.categoryID)
		}
	}
	return nil
}

func newProductCreateCmd(a *app) *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := service.ProductParams{Status: model.ProductStatusInStock}
			if err := flags.apply(cmd, &params); err != nil {
				return err
			}

			id, err := a.client.CreateProduct(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printID(id)
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("sku")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newProductUpdateCmd(a *app) *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.client.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			params := service.UpdateProductParams{
				ID: id,
				ProductParams: service.ProductParams{
					Name:        current.Name,
					Sku:         current.Sku,
					Quantity:    current.Quantity,
					Price:       current.Price,
					Status:      current.Status,
					Description: current.Description,
					CategoryID:  current.CategoryID,
				},
			}
			if err := flags.apply(cmd, &params.ProductParams); err != nil {
				return err
			}

			return a.client.UpdateProduct(cmd.Context(), params)
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock <id> <quantity>",
		Short: "Set the quantity in stock of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}

			return a.client.UpdateInventory(cmd.Context(), service.UpdateInventoryParams{ID: id, Quantity: quantity})
		},
	}
}

func newProductDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.client.DeleteProduct(cmd.Context(), id)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
