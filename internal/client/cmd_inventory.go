// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (a *App) cmdDashboard(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("dashboard"), args, 0); !ok {
		return err
	}

	dashboard, err := a.services.InventoryService.Dashboard(ctx)
	if err != nil {
		return err
	}

	title(a.out, "Totals")
	tw := newTable(a.out)
	tw.row("Products", dashboard.Stats.Products)
	tw.row("Lots", dashboard.Stats.Lots)
	tw.row("Categories", dashboard.Stats.Categories)
	tw.row("Suppliers", dashboard.Stats.Suppliers)
	tw.row("Clients", dashboard.Stats.Clients)
	if err = tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	title(a.out, "Products per category")
	tw = newTable(a.out)
	for _, c := range dashboard.CategoriesChart {
		tw.row(c.Name, c.Count)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	title(a.out, "Entries per day")
	tw = newTable(a.out)
	for _, e := range dashboard.EntriesChart {
		tw.row(e.Date, e.Total)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	title(a.out, "Low stock")
	if len(dashboard.LowStock) == 0 {
		fmt.Fprintln(a.out, "none")
		return nil
	}
	tw = newTable(a.out)
	for _, p := range dashboard.LowStock {
		tw.row(tui.WarningStyle.Render(p.Description), p.Category, p.Stock)
	}
	return tw.Flush()
}

func (a *App) cmdProducts(ctx context.Context, args []string) error {
	fs := a.newFlagSet("products")
	sku := fs.String("sku", "", "only products with this SKU")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}

	products, err := a.services.InventoryService.ListProducts(ctx, models.ProductFilter{SKU: *sku})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	tw.row("ID", "SKU", "CODE", "DESCRIPTION", "CATEGORY", "AVAILABLE", "MIN", "")
	for _, p := range products {
		low := ""
		if p.LowStock() {
			low = tui.WarningStyle.Render("low")
		}
		tw.row(p.ID, p.SKU, p.InternalCode, p.Description, p.Category.Name, p.Available, p.MinStock, low)
	}
	return tw.Flush()
}

func (a *App) cmdProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("product")
	copySKU := fs.Bool("copy", false, "copy the SKU to the clipboard")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}

	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	p, err := a.services.InventoryService.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err = a.printProduct(p); err != nil {
		return err
	}

	if *copySKU {
		if err = a.copyText(p.SKU); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.errOut, "SKU copied to the clipboard")
	}
	return nil
}

func (a *App) printProduct(p models.Product) error {
	supplier := "-"
	if p.Supplier != nil {
		supplier = p.Supplier.Name
	}

	tw := newTable(a.out)
	tw.row("ID", p.ID)
	tw.row("SKU", p.SKU)
	tw.row("Code", p.InternalCode)
	tw.row("Description", p.Description)
	tw.row("Category", p.Category.Name)
	tw.row("Equipment", fmt.Sprintf("%s %s", p.Equipment.Brand.Name, p.Equipment.Name))
	tw.row("Supplier", supplier)
	tw.row("Unit", orDash(p.Unit))
	tw.row("Status", p.Status)
	tw.row("Available", p.Available)
	tw.row("Min stock", p.MinStock)
	tw.row("Updated", formatTime(p.Updated))
	if err := tw.Flush(); err != nil {
		return err
	}

	if p.LowStock() {
		fmt.Fprintln(a.out, tui.WarningStyle.Render("Stock is under the minimum."))
	}
	return nil
}

func (a *App) cmdClients(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("clients"), args, 0); !ok {
		return err
	}

	clients, err := a.services.InventoryService.ListClients(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	tw.row("ID", "NAME", "PHONE", "EMAIL", "RFC", "SPECIAL", "ACTIVE")
	for _, c := range clients {
		tw.row(c.ID, c.Name, orDash(c.Phone), orDash(c.Email), orDash(c.RFC), yesNo(c.Special), yesNo(c.Active))
	}
	return tw.Flush()
}

func (a *App) cmdSuppliers(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("suppliers"), args, 0); !ok {
		return err
	}

	suppliers, err := a.services.InventoryService.ListSuppliers(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	tw.row("ID", "NAME", "CONTACT", "PHONE", "EMAIL", "ACTIVE")
	for _, s := range suppliers {
		tw.row(s.ID, s.Name, deref(s.ContactName), deref(s.Phone), deref(s.Email), yesNo(s.Active))
	}
	return tw.Flush()
}

func (a *App) cmdCatalogs(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("catalogs"), args, 0); !ok {
		return err
	}

	catalogs, err := a.services.CatalogService.Load(ctx)
	if err != nil {
		return err
	}

	title(a.out, "Categories")
	tw := newTable(a.out)
	for _, c := range catalogs.Categories {
		tw.row(c.ID, c.Name)
	}
	_ = tw.Flush()

	title(a.out, "Brands")
	tw = newTable(a.out)
	for _, b := range catalogs.Brands {
		tw.row(b.ID, b.Name)
	}
	_ = tw.Flush()

	title(a.out, "Equipment")
	tw = newTable(a.out)
	for _, e := range catalogs.Equipment {
		tw.row(e.ID, e.Brand.Name, e.Name)
	}
	_ = tw.Flush()

	title(a.out, "Users")
	tw = newTable(a.out)
	for _, u := range catalogs.Users {
		role := "-"
		if u.Profile != nil {
			role = string(u.Profile.Role)
		}
		tw.row(u.ID, u.Username, role)
	}
	_ = tw.Flush()

	fmt.Fprintf(a.out, "%d suppliers, %d clients\n", len(catalogs.Suppliers), len(catalogs.Clients))
	return nil
}

func (a *App) cmdSystemVariables(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("sysvars"), args, 0); !ok {
		return err
	}

	vars, err := a.services.InventoryService.ListSystemVariables(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	tw.row("ID", "KEY", "VALUE", "DESCRIPTION")
	for _, v := range vars {
		tw.row(v.ID, v.Key, deref(v.Value), deref(v.Description))
	}
	return tw.Flush()
}

func (a *App) cmdSetSystemVariable(ctx context.Context, args []string) error {
	fs := a.newFlagSet("sysvar-set")
	if ok, err := parseFlags(fs, args, 2); !ok {
		return err
	}

	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}
	value := fs.Arg(1)

	updated, err := a.services.InventoryService.UpdateSystemVariable(ctx, id, models.SystemVariableUpdate{Value: &value})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s = %s\n", updated.Key, deref(updated.Value))
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrUsage, raw)
	}
	return id, nil
}
