package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuanvumaihuynh/product-inventory/internal/client"
	"github.com/tuanvumaihuynh/product-inventory/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	out     io.Writer
	cfg     config.Client
	json    bool
	timeout time.Duration
	client  *client.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "invctl",
		Short:         "Manage products and categories of the inventory API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("url") {
				env, err := config.New[config.Client]()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				a.cfg.BaseURL = env.BaseURL
			}
			a.cfg.Timeout = a.timeout
			a.client = client.New(a.cfg)
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.cfg.BaseURL, "url", "http://localhost:8000", "base URL of the inventory API (INVENTORY_API_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "print JSON instead of tables")

	root.AddCommand(
		newHealthCmd(a),
		newProductCmd(a),
		newCategoryCmd(a),
		newWatchCmd(a),
	)
	return root
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API and its store are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "ok")
			return nil
		},
	}
}
