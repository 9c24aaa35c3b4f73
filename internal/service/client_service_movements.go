// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	entryIDPrefix = "e-"
	exitIDPrefix  = "s-"
)

type clientMovementService struct {
	api    adapter.InventoryAPI
	logger *logger.Logger
}

func NewClientMovementService(api adapter.InventoryAPI, logger *logger.Logger) ClientMovementService {
	return &clientMovementService{api: api, logger: logger}
}

func (m *clientMovementService) List(ctx context.Context, filter models.MovementFilter) ([]models.MovementView, error) {
	all, err := m.api.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", mapAdapterError(err, nil))
	}

	views := combineMovements(all)
	views = filterMovements(views, filter)
	sortMovements(views)

	return views, nil
}

// combineMovements flattens entries and exits into one list of views.
func combineMovements(all models.AllMovements) []models.MovementView {
	views := make([]models.MovementView, 0, len(all.Entries)+len(all.Exits))

	for i := range all.Entries {
		e := &all.Entries[i]
		views = append(views, models.MovementView{
			ID:       entryIDPrefix + strconv.FormatInt(e.ID, 10),
			Date:     e.Created,
			Kind:     models.MovementEntry,
			User:     username(e.ReceivedBy),
			Comments: deref(e.Comments),
			Items:    e.Items,
			Entry:    e,
		})
	}

	for i := range all.Exits {
		s := &all.Exits[i]
		views = append(views, models.MovementView{
			ID:       exitIDPrefix + strconv.FormatInt(s.ID, 10),
			Date:     s.Created,
			Kind:     models.MovementExit,
			User:     username(s.DeliveredBy),
			Comments: deref(s.Comments),
			Items:    s.Items,
			Exit:     s,
		})
	}

	return views
}

func filterMovements(views []models.MovementView, filter models.MovementFilter) []models.MovementView {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	return slices.DeleteFunc(views, func(v models.MovementView) bool {
		switch v.Kind {
		case models.MovementEntry:
			if !filter.Entries {
				return true
			}
		case models.MovementExit:
			if !filter.Exits {
				return true
			}
		}

		if query == "" {
			return false
		}
		return !matchesQuery(v, query)
	})
}

// matchesQuery reports whether the lower-cased query occurs in the id, the
// user, the comments or the description or internal code of any product.
func matchesQuery(v models.MovementView, query string) bool {
	if strings.Contains(strings.ToLower(v.ID), query) ||
		strings.Contains(strings.ToLower(v.User), query) ||
		strings.Contains(strings.ToLower(v.Comments), query) {
		return true
	}

	for _, item := range v.Items {
		if strings.Contains(strings.ToLower(item.Product.Description), query) ||
			strings.Contains(strings.ToLower(item.Product.InternalCode), query) {
			return true
		}
	}
	return false
}

// sortMovements orders newest first; equal dates fall back to the id.
func sortMovements(views []models.MovementView) {
	slices.SortStableFunc(views, func(a, b models.MovementView) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func (m *clientMovementService) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	entry, err := m.api.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry %d: %w", id, mapAdapterError(err, ErrMovementNotFound))
	}
	return entry, nil
}

func (m *clientMovementService) GetExit(ctx context.Context, id int64) (models.Exit, error) {
	exit, err := m.api.GetExit(ctx, id)
	if err != nil {
		return models.Exit{}, fmt.Errorf("get exit %d: %w", id, mapAdapterError(err, ErrMovementNotFound))
	}
	return exit, nil
}

func (m *clientMovementService) ResolveScan(ctx context.Context, scan models.ScannedItem) (models.MovementItemCreate, error) {
	sku := strings.TrimSpace(scan.SKU)
	if sku == "" {
		return models.MovementItemCreate{}, ErrEmptySKU
	}
	if scan.Quantity <= 0 {
		return models.MovementItemCreate{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, sku)
	}

	products, err := m.api.ListProducts(ctx, models.ProductFilter{SKU: sku})
	if err != nil {
		return models.MovementItemCreate{}, fmt.Errorf("look up %q: %w", sku, mapAdapterError(err, nil))
	}
	if len(products) == 0 {
		return models.MovementItemCreate{}, fmt.Errorf("%w: %s", ErrNoProductForCode, sku)
	}

	// the first match wins, as at the counter
	return models.MovementItemCreate{Product: products[0].ID, Quantity: scan.Quantity}, nil
}

func (m *clientMovementService) resolveAll(ctx context.Context, scans []models.ScannedItem) ([]models.MovementItemCreate, error) {
	if len(scans) == 0 {
		return nil, ErrNoItems
	}

	items := make([]models.MovementItemCreate, 0, len(scans))
	for _, scan := range scans {
		item, err := m.ResolveScan(ctx, scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *clientMovementService) RegisterEntry(ctx context.Context, entry models.EntryCreate, scans []models.ScannedItem) (models.Entry, error) {
	items, err := m.resolveAll(ctx, scans)
	if err != nil {
		return models.Entry{}, err
	}
	entry.Items = append(entry.Items, items...)

	created, err := m.api.CreateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("register entry: %w", mapAdapterError(err, nil))
	}

	m.logger.Info().Str("func", "*clientMovementService.RegisterEntry").
		Int64("id", created.ID).Int("items", len(entry.Items)).Msg("entry registered")
	return created, nil
}

func (m *clientMovementService) RegisterExit(ctx context.Context, exit models.ExitCreate, scans []models.ScannedItem) (models.Exit, error) {
	items, err := m.resolveAll(ctx, scans)
	if err != nil {
		return models.Exit{}, err
	}
	exit.Items = append(exit.Items, items...)

	created, err := m.api.CreateExit(ctx, exit)
	if err != nil {
		return models.Exit{}, fmt.Errorf("register exit: %w", mapAdapterError(err, nil))
	}

	m.logger.Info().Str("func", "*clientMovementService.RegisterExit").
		Int64("id", created.ID).Int("items", len(exit.Items)).Msg("exit registered")
	return created, nil
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
