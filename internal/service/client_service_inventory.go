package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type clientInventoryService struct {
	api    adapter.InventoryAPI
	logger *logger.Logger
}

func NewClientInventoryService(api adapter.InventoryAPI, logger *logger.Logger) ClientInventoryService {
	return &clientInventoryService{api: api, logger: logger}
}

func (i *clientInventoryService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	dashboard, err := i.api.Dashboard(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", mapAdapterError(err, nil))
	}
	return dashboard, nil
}

func (i *clientInventoryService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := i.api.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", mapAdapterError(err, nil))
	}

	i.logger.Debug().Str("func", "*clientInventoryService.ListProducts").
		Str("sku", filter.SKU).Int("count", len(products)).Msg("products listed")
	return products, nil
}

func (i *clientInventoryService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := i.api.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, mapAdapterError(err, ErrProductNotFound))
	}
	return product, nil
}

func (i *clientInventoryService) CreateProduct(ctx context.Context, create models.ProductCreate) (models.Product, error) {
	product, err := i.api.CreateProduct(ctx, create)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", mapAdapterError(err, nil))
	}

	i.logger.Info().Str("func", "*clientInventoryService.CreateProduct").
		Int64("id", product.ID).Str("sku", product.SKU).Msg("product created")
	return product, nil
}

func (i *clientInventoryService) DeleteProduct(ctx context.Context, id int64) error {
	if err := i.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, mapAdapterError(err, ErrProductNotFound))
	}

	i.logger.Info().Str("func", "*clientInventoryService.DeleteProduct").
		Int64("id", id).Msg("product deleted")
	return nil
}

func (i *clientInventoryService) RenameBrand(ctx context.Context, id int64, name string) (models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Brand{}, ErrEmptyName
	}

	brand, err := i.api.UpdateBrand(ctx, id, models.BrandUpdate{Name: name})
	if err != nil {
		return models.Brand{}, fmt.Errorf("rename brand %d: %w", id, mapAdapterError(err, ErrBrandNotFound))
	}

	i.logger.Info().Str("func", "*clientInventoryService.RenameBrand").
		Int64("id", id).Str("name", brand.Name).Msg("brand renamed")
	return brand, nil
}

func (i *clientInventoryService) DeactivateEquipment(ctx context.Context, id int64) error {
	if err := i.api.DeactivateEquipment(ctx, id); err != nil {
		return fmt.Errorf("deactivate equipment %d: %w", id, mapAdapterError(err, ErrEquipmentNotFound))
	}

	i.logger.Info().Str("func", "*clientInventoryService.DeactivateEquipment").
		Int64("id", id).Msg("equipment deactivated")
	return nil
}

func (i *clientInventoryService) ListClients(ctx context.Context) ([]models.Client, error) {
	clients, err := i.api.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", mapAdapterError(err, nil))
	}
	return clients, nil
}

func (i *clientInventoryService) GetClient(ctx context.Context, id int64) (models.Client, error) {
	client, err := i.api.GetClient(ctx, id)
	if err != nil {
		return models.Client{}, fmt.Errorf("get client %d: %w", id, mapAdapterError(err, ErrClientNotFound))
	}
	return client, nil
}

func (i *clientInventoryService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	created, err := i.api.CreateClient(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("create client: %w", mapAdapterError(err, nil))
	}

	i.logger.Info().Str("func", "*clientInventoryService.CreateClient").
		Int64("id", created.ID).Msg("client created")
	return created, nil
}

func (i *clientInventoryService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := i.api.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", mapAdapterError(err, nil))
	}
	return suppliers, nil
}

func (i *clientInventoryService) CreateSupplier(ctx context.Context, create models.SupplierCreate) (models.Supplier, error) {
	supplier, err := i.api.CreateSupplier(ctx, create)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("create supplier: %w", mapAdapterError(err, nil))
	}

	i.logger.Info().Str("func", "*clientInventoryService.CreateSupplier").
		Int64("id", supplier.ID).Msg("supplier created")
	return supplier, nil
}

func (i *clientInventoryService) ListSystemVariables(ctx context.Context) ([]models.SystemVariable, error) {
	variables, err := i.api.ListSystemVariables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list system variables: %w", mapAdapterError(err, nil))
	}
	return variables, nil
}

func (i *clientInventoryService) UpdateSystemVariable(ctx context.Context, id int64, update models.SystemVariableUpdate) (models.SystemVariable, error) {
	variable, err := i.api.UpdateSystemVariable(ctx, id, update)
	if err != nil {
		return models.SystemVariable{}, fmt.Errorf("update system variable %d: %w", id, mapAdapterError(err, ErrVariableNotFound))
	}

	i.logger.Info().Str("func", "*clientInventoryService.UpdateSystemVariable").
		Int64("id", id).Str("key", variable.Key).Msg("system variable updated")
	return variable, nil
}
