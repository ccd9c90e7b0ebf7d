package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/product-inventory/internal/client"
	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "c"},
		Short:   "Query and change product categories",
	}
	cmd.AddCommand(
		newCategoryListCmd(a),
		newCategoryGetCmd(a),
		newCategoryCreateCmd(a),
		newCategoryUpdateCmd(a),
		newCategoryDeleteCmd(a),
	)
	return cmd
}

func newCategoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := a.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return a.printCategories(categories)
		},
	}
}

func newCategoryGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a category and its products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			category, err := a.client.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printCategory(category)
		},
	}
}

type categoryFlags struct {
	name        string
	description string
	active      bool
}

func (f *categoryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "category name")
	cmd.Flags().StringVar(&f.description, "description", "", "free text description")
	cmd.Flags().BoolVar(&f.active, "active", true, "whether the category is active")
}

func (f *categoryFlags) apply(cmd *cobra.Command, params *service.ProductCategoryParams) {
	changed := cmd.Flags().Changed
	if changed("name") {
		params.Name = f.name
	}
	if changed("description") {
		params.Description = ptr.New(f.description)
	}
	if changed("active") || params.IsActive == nil {
		params.IsActive = ptr.New(f.active)
	}
}

func newCategoryCreateCmd(a *app) *cobra.Command {
	var flags categoryFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var params service.ProductCategoryParams
			flags.apply(cmd, &params)

			id, err := a.client.CreateCategory(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printID(id)
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCategoryUpdateCmd(a *app) *cobra.Command {
	var flags categoryFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.client.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}

			params := service.UpdateProductCategoryParams{
				ID: id,
				ProductCategoryParams: service.ProductCategoryParams{
					Name:        current.Name,
					Description: current.Description,
					IsActive:    ptr.New(current.IsActive),
				},
			}
			flags.apply(cmd, &params.ProductCategoryParams)

			return a.client.UpdateCategory(cmd.Context(), params)
		},
	}
	flags.register(cmd)
	return cmd
}

// The API detaches products of a deleted category. Unless forced, the
// command refuses to delete a category that still holds products.
func newCategoryDeleteCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				products, err := a.client.ListCategoryProducts(cmd.Context(), id)
				if err != nil && !errors.Is(err, client.ErrNotFound) {
					return err
				}
				if len(products) > 0 {
					return fmt.Errorf("category %d still holds %d products, use --force to delete it anyway", id, len(products))
				}
			}

			return a.client.DeleteCategory(cmd.Context(), id)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "delete even when products still reference the category")
	return cmd
}
