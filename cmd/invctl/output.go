package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tuanvumaihuynh/product-inventory/internal/service"
	"github.com/tuanvumaihuynh/product-inventory/pkg/ptr"
)

func (a *app) newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printProducts(products []service.ProductView) error {
	if a.json {
		return a.printJSON(products)
	}

	t := a.newTable(table.Row{"ID", "Name", "SKU", "Qty", "Price", "Status", "Category"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	for _, p := range products {
		t.AppendRow(table.Row{p.ID, p.Name, p.Sku, p.Quantity, p.Price.StringFixed(2), p.Status, ptr.Value(p.CategoryName)})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(products)})
	t.Render()
	return nil
}

func (a *app) printProduct(p service.ProductView) error {
	if a.json {
		return a.printJSON(p)
	}

	t := a.newTable(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"ID", p.ID},
		{"Name", p.Name},
		{"SKU", p.Sku},
		{"Quantity", p.Quantity},
		{"Price", p.Price.StringFixed(2)},
		{"Status", p.Status},
		{"Description", ptr.Value(p.Description)},
		{"Category", categoryLabel(p.CategoryID, p.CategoryName)},
	})
	t.Render()
	return nil
}

func (a *app) printLowStock(alerts []service.LowStockAlert) error {
	if a.json {
		return a.printJSON(alerts)
	}

	t := a.newTable(table.Row{"ID", "Name", "SKU", "Qty", "Category", "Severity"})
	for _, alert := range alerts {
		t.AppendRow(table.Row{alert.ID, alert.Name, alert.Sku, alert.Quantity, ptr.Value(alert.CategoryName), severityText(alert.Severity)})
	}
	t.Render()
	return nil
}

func (a *app) printCategories(categories []service.CategoryListView) error {
	if a.json {
		return a.printJSON(categories)
	}

	t := a.newTable(table.Row{"ID", "Name", "Active", "Products", "Description"})
	for _, c := range categories {
		t.AppendRow(table.Row{c.ID, c.Name, c.IsActive, c.ProductCount, ptr.Value(c.Description)})
	}
	t.Render()
	return nil
}

func (a *app) printCategory(c service.CategoryDetailView) error {
	if a.json {
		return a.printJSON(c)
	}

	t := a.newTable(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"ID", c.ID},
		{"Name", c.Name},
		{"Active", c.IsActive},
		{"Description", ptr.Value(c.Description)},
		{"Products", len(c.Products)},
	})
	t.Render()

	if len(c.Products) == 0 {
		return nil
	}
	return a.printProducts(c.Products)
}

func (a *app) printID(id int64) error {
	if a.json {
		return a.printJSON(id)
	}
	fmt.Fprintln(a.out, id)
	return nil
}

func categoryLabel(id *int64, name *string) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", ptr.Value(name), strconv.FormatInt(*id, 10))
}

func severityText(severity string) string {
	switch severity {
	case service.SeverityCritical:
		return text.FgRed.Sprint(severity)
	case service.SeverityHigh:
		return text.FgYellow.Sprint(severity)
	default:
		return severity
	}
}
