// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// itemsFlag collects repeated -item SKU=QTY values.
type itemsFlag []models.ScannedItem

func (f *itemsFlag) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, len(*f))
	for i, item := range *f {
		parts[i] = fmt.Sprintf("%s=%d", item.SKU, item.Quantity)
	}
	return strings.Join(parts, ",")
}

// Set parses one SKU=QTY pair. The quantity is split at the last "=", so
// the code itself may contain one.
func (f *itemsFlag) Set(value string) error {
	i := strings.LastIndex(value, "=")
	if i <= 0 {
		return ErrInvalidItem
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(value[i+1:]), 10, 64)
	if err != nil {
		return ErrInvalidItem
	}

	*f = append(*f, models.ScannedItem{SKU: strings.TrimSpace(value[:i]), Quantity: quantity})
	return nil
}

func (a *App) cmdMovements(ctx context.Context, args []string) error {
	fs := a.newFlagSet("movements")
	entries := fs.Bool("entradas", true, "include entries")
	exits := fs.Bool("salidas", true, "include exits")
	query := fs.String("q", "", "match id, user, comments, product description or code")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}

	views, err := a.services.MovementService.List(ctx, models.MovementFilter{
		Entries: *entries,
		Exits:   *exits,
		Query:   *query,
	})
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	tw.row("ID", "DATE", "KIND", "USER", "ITEMS", "COMMENTS")
	for _, v := range views {
		tw.row(v.ID, formatTime(v.Date), v.Kind, orDash(v.User), len(v.Items), orDash(v.Comments))
	}
	return tw.Flush()
}

func (a *App) cmdEntry(ctx context.Context, args []string) error {
	fs := a.newFlagSet("entry")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	entry, err := a.services.MovementService.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	a.printEntry(entry)
	return nil
}

func (a *App) cmdExit(ctx context.Context, args []string) error {
	fs := a.newFlagSet("exit")
	if ok, err := parseFlags(fs, args, 1); !ok {
		return err
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	exit, err := a.services.MovementService.GetExit(ctx, id)
	if err != nil {
		return err
	}

	a.printExit(exit)
	return nil
}

func (a *App) cmdAddEntry(ctx context.Context, args []string) error {
	var items itemsFlag

	fs := a.newFlagSet("add-entry")
	invoice := fs.String("invoice", "", "invoice number")
	entryType := fs.String("type", string(models.EntryPurchase), "compra, devolucion or ajuste")
	comment := fs.String("comment", "", "free text comment")
	fs.Var(&items, "item", "scanned SKU=QUANTITY, repeatable")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}
	if *invoice == "" {
		fs.Usage()
		return fmt.Errorf("%w: -invoice is required", ErrUsage)
	}

	entry, err := a.services.MovementService.RegisterEntry(ctx, models.EntryCreate{
		EntryType:     models.EntryType(*entryType),
		InvoiceNumber: *invoice,
		Comments:      optional(*comment),
	}, []models.ScannedItem(items))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Entry %d registered\n", entry.ID)
	a.printEntry(entry)
	return nil
}

func (a *App) cmdAddExit(ctx context.Context, args []string) error {
	var items itemsFlag

	fs := a.newFlagSet("add-exit")
	clientName := fs.String("client", "", "client name")
	exitType := fs.String("type", string(models.ExitProject), "project, rental, internal or adjustment")
	technician := fs.String("technician", "", "technician in charge")
	receivedBy := fs.String("received-by", "", "person who received the goods")
	approval := fs.Bool("approval", false, "mark the exit as requiring approval")
	comment := fs.String("comment", "", "free text comment")
	fs.Var(&items, "item", "scanned SKU=QUANTITY, repeatable")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}
	if *clientName == "" {
		fs.Usage()
		return fmt.Errorf("%w: -client is required", ErrUsage)
	}

	exit, err := a.services.MovementService.RegisterExit(ctx, models.ExitCreate{
		ExitType:         models.ExitType(*exitType),
		ClientName:       *clientName,
		Technician:       optional(*technician),
		ReceivedBy:       optional(*receivedBy),
		RequiresApproval: *approval,
		Comments:         optional(*comment),
	}, []models.ScannedItem(items))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exit %d registered\n", exit.ID)
	a.printExit(exit)
	return nil
}

func (a *App) printEntry(entry models.Entry) {
	receivedBy := "-"
	if entry.ReceivedBy != nil {
		receivedBy = entry.ReceivedBy.Username
	}

	tw := newTable(a.out)
	tw.row("ID", entry.ID)
	tw.row("Type", entry.EntryType)
	tw.row("Invoice", orDash(entry.InvoiceNumber))
	tw.row("Received by", receivedBy)
	tw.row("Approved", yesNo(entry.Approved))
	tw.row("Created", formatTime(entry.Created))
	tw.row("Comments", deref(entry.Comments))
	_ = tw.Flush()

	a.printItems(entry.Items)
}

func (a *App) printExit(exit models.Exit) {
	deliveredBy := "-"
	if exit.DeliveredBy != nil {
		deliveredBy = exit.DeliveredBy.Username
	}

	tw := newTable(a.out)
	tw.row("ID", exit.ID)
	tw.row("Type", exit.ExitType)
	tw.row("Client", exit.ClientName)
	tw.row("Technician", deref(exit.Technician))
	tw.row("Delivered by", deliveredBy)
	tw.row("Received by", deref(exit.ReceivedBy))
	tw.row("Needs approval", yesNo(exit.RequiresApproval))
	tw.row("Approved", yesNo(exit.Approved))
	tw.row("Created", formatTime(exit.Created))
	tw.row("Comments", deref(exit.Comments))
	_ = tw.Flush()

	a.printItems(exit.Items)
}

func (a *App) printItems(items []models.MovementItem) {
	fmt.Fprintln(a.out)
	tw := newTable(a.out)
	tw.row("SKU", "DESCRIPTION", "QUANTITY")
	for _, item := range items {
		tw.row(item.Product.SKU, item.Product.Description, item.Quantity)
	}
	_ = tw.Flush()
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
