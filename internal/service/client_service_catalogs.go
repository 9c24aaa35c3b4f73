package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type clientCatalogService struct {
	api    adapter.InventoryAPI
	logger *logger.Logger
}

func NewClientCatalogService(api adapter.InventoryAPI, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{api: api, logger: logger}
}

func (c *clientCatalogService) Load(ctx context.Context) (models.Catalogs, error) {
	var catalogs models.Catalogs
	g, gctx := errgroup.WithContext(ctx)

	// each goroutine writes its own field
	g.Go(load(gctx, "categories", c.api.ListCategories, &catalogs.Categories))
	g.Go(load(gctx, "brands", c.api.ListBrands, &catalogs.Brands))
	g.Go(load(gctx, "equipment", c.api.ListEquipment, &catalogs.Equipment))
	g.Go(load(gctx, "suppliers", c.api.ListSuppliers, &catalogs.Suppliers))
	g.Go(load(gctx, "users", c.api.ListUsers, &catalogs.Users))
	g.Go(load(gctx, "clients", c.api.ListClients, &catalogs.Clients))

	if err := g.Wait(); err != nil {
		c.logger.Err(err).Str("func", "*clientCatalogService.Load").Msg("failed to load catalogs")
		return models.Catalogs{}, err
	}

	return catalogs, nil
}

func load[T any](ctx context.Context, name string, list func(context.Context) ([]T, error), dst *[]T) func() error {
	return func() error {
		items, err := list(ctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, mapAdapterError(err, nil))
		}
		*dst = items
		return nil
	}
}
