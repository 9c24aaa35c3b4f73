// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func (a *App) cmdAddProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add-product")
	sku := fs.String("sku", "", "barcode of the product")
	description := fs.String("description", "", "product description")
	code := fs.String("code", "", "internal code")
	category := fs.Int64("category", 0, "category id")
	equipment := fs.Int64("equipment", 0, "compatible equipment id")
	supplier := fs.Int64("supplier", 0, "supplier id")
	minStock := fs.Int64("min", 0, "minimum stock before the product is flagged")
	unit := fs.String("unit", "", "unit of measure, pieza when empty")
	status := fs.String("status", "", "activo, inactivo or descontinuado")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}

	var missing []string
	if strings.TrimSpace(*sku) == "" {
		missing = append(missing, "-sku")
	}
	if strings.TrimSpace(*description) == "" {
		missing = append(missing, "-description")
	}
	if *category <= 0 {
		missing = append(missing, "-category")
	}
	if *equipment <= 0 {
		missing = append(missing, "-equipment")
	}
	if len(missing) > 0 {
		fs.Usage()
		return fmt.Errorf("%w: %s required", ErrUsage, strings.Join(missing, ", "))
	}

	create := models.ProductCreate{
		InternalCode: *code,
		Description:  *description,
		Category:     *category,
		Equipment:    *equipment,
		MinStock:     *minStock,
		SKU:          *sku,
		Unit:         *unit,
		Status:       models.ProductStatus(*status),
	}
	if *supplier > 0 {
		create.Supplier = supplier
	}

	product, err := a.services.InventoryService.CreateProduct(ctx, create)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Product %d created\n", product.ID)
	return a.printProduct(product)
}

func (a *App) cmdDeleteProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("rm-product")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	if err = a.services.InventoryService.DeleteProduct(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Product %d deleted\n", id)
	return nil
}

func (a *App) cmdRenameBrand(ctx context.Context, args []string) error {
	fs := a.newFlagSet("rename-brand")
	if ok, err := parseFlags(fs, args, 2); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	brand, err := a.services.InventoryService.RenameBrand(ctx, id, fs.Arg(1))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Brand %d renamed to %s\n", brand.ID, brand.Name)
	return nil
}

func (a *App) cmdDeactivateEquipment(ctx context.Context, args []string) error {
	fs := a.newFlagSet("rm-equipment")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	if err = a.services.InventoryService.DeactivateEquipment(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Equipment %d deactivated\n", id)
	return nil
}

func (a *App) cmdClient(ctx context.Context, args []string) error {
	fs := a.newFlagSet("client")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	c, err := a.services.InventoryService.GetClient(ctx, id)
	if err != nil {
		return err
	}

	a.printClient(c)
	return nil
}

func (a *App) cmdAddClient(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add-client")
	name := fs.String("name", "", "client name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	address := fs.String("address", "", "postal address")
	rfc := fs.String("rfc", "", "tax id")
	special := fs.Bool("special", false, "mark as a special client")
	discounts := fs.String("discounts", "", "agreed discounts")
	inactive := fs.Bool("inactive", false, "create the client as inactive")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}
	if strings.TrimSpace(*name) == "" {
		fs.Usage()
		return fmt.Errorf("%w: -name is required", ErrUsage)
	}

	c, err := a.services.InventoryService.CreateClient(ctx, models.Client{
		Name:      *name,
		Phone:     *phone,
		Email:     *email,
		Address:   *address,
		RFC:       *rfc,
		Special:   *special,
		Discounts: *discounts,
		Active:    !*inactive,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Client %d created\n", c.ID)
	a.printClient(c)
	return nil
}

func (a *App) cmdAddSupplier(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add-supplier")
	name := fs.String("name", "", "supplier name")
	contact := fs.String("contact", "", "contact person")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	address := fs.String("address", "", "postal address")
	inactive := fs.Bool("inactive", false, "create the supplier as inactive")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}
	if strings.TrimSpace(*name) == "" {
		fs.Usage()
		return fmt.Errorf("%w: -name is required", ErrUsage)
	}

	s, err := a.services.InventoryService.CreateSupplier(ctx, models.SupplierCreate{
		Name:        *name,
		ContactName: optional(*contact),
		Phone:       optional(*phone),
		Email:       optional(*email),
		Address:     optional(*address),
		Active:      !*inactive,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Supplier %d created: %s\n", s.ID, s.Name)
	return nil
}

func (a *App) printClient(c models.Client) {
	tw := newTable(a.out)
	tw.row("ID", c.ID)
	tw.row("Name", c.Name)
	tw.row("Phone", orDash(c.Phone))
	tw.row("Email", orDash(c.Email))
	tw.row("Address", orDash(c.Address))
	tw.row("RFC", orDash(c.RFC))
	tw.row("Special", yesNo(c.Special))
	tw.row("Discounts", orDash(c.Discounts))
	tw.row("Active", yesNo(c.Active))
	_ = tw.Flush()
}
