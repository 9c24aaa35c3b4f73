package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// fetch sends req through Do and decodes the response body into T.
func fetch[T any](ctx context.Context, h *httpServerAdapter, resource string, req *Request) (T, error) {
	var out T

	resp, err := h.Do(ctx, req)
	if err != nil {
		return out, fmt.Errorf("%s request: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, fmt.Errorf("%s: %w", resource, err)
	}
	if err = decodeStrict(resource, resp.Body(), &out); err != nil {
		return out, err
	}

	return out, nil
}

// exec sends req through Do and discards the response body.
func exec(ctx context.Context, h *httpServerAdapter, resource string, req *Request) error {
	resp, err := h.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%s request: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", resource, err)
	}
	return nil
}

func withBody(req *Request, body any) *Request {
	req.Body = body
	return req
}

// ListProducts implements [InventoryAPI]. GET productos/productos/[?sku=].
func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	req := newRequest(http.MethodGet, endpointProducts)
	if filter.SKU != "" {
		req.Query = url.Values{"sku": []string{filter.SKU}}
	}
	return fetch[[]models.Product](ctx, h, "products", req)
}

// GetProduct implements [InventoryAPI].
func (h *httpServerAdapter) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return fetch[models.Product](ctx, h, "product", newRequest(http.MethodGet, detail(endpointProducts, id)))
}

// CreateProduct implements [InventoryAPI].
func (h *httpServerAdapter) CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	return fetch[models.Product](ctx, h, "product", withBody(newRequest(http.MethodPost, endpointProducts), product))
}

// DeleteProduct implements [InventoryAPI].
func (h *httpServerAdapter) DeleteProduct(ctx context.Context, id int64) error {
	return exec(ctx, h, "product", newRequest(http.MethodDelete, detail(endpointProducts, id)))
}

// ListCategories implements [InventoryAPI].
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	return fetch[[]models.Category](ctx, h, "categories", newRequest(http.MethodGet, endpointCategories))
}

// ListBrands implements [InventoryAPI].
func (h *httpServerAdapter) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return fetch[[]models.Brand](ctx, h, "brands", newRequest(http.MethodGet, endpointBrands))
}

// ListEquipment implements [InventoryAPI].
func (h *httpServerAdapter) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	return fetch[[]models.Equipment](ctx, h, "equipment", newRequest(http.MethodGet, endpointEquipment))
}

// UpdateBrand implements [InventoryAPI]. PATCH productos/marcas/{id}/ {nombre}.
func (h *httpServerAdapter) UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error) {
	return fetch[models.Brand](ctx, h, "brand", withBody(newRequest(http.MethodPatch, detail(endpointBrands, id)), update))
}

// DeactivateEquipment implements [InventoryAPI]. Equipment is never deleted:
// PATCH productos/equipos/{id}/ {"activo": false}.
func (h *httpServerAdapter) DeactivateEquipment(ctx context.Context, id int64) error {
	return exec(ctx, h, "equipment",
		withBody(newRequest(http.MethodPatch, detail(endpointEquipment, id)), models.EquipmentStatus{Active: false}))
}

// ListSuppliers implements [InventoryAPI].
func (h *httpServerAdapter) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return fetch[[]models.Supplier](ctx, h, "suppliers", newRequest(http.MethodGet, endpointSuppliers))
}

// CreateSupplier implements [InventoryAPI].
func (h *httpServerAdapter) CreateSupplier(ctx context.Context, supplier models.SupplierCreate) (models.Supplier, error) {
	return fetch[models.Supplier](ctx, h, "supplier", withBody(newRequest(http.MethodPost, endpointSuppliers), supplier))
}

// ListClients implements [InventoryAPI].
func (h *httpServerAdapter) ListClients(ctx context.Context) ([]models.Client, error) {
	return fetch[[]models.Client](ctx, h, "clients", newRequest(http.MethodGet, endpointClients))
}

// GetClient implements [InventoryAPI].
func (h *httpServerAdapter) GetClient(ctx context.Context, id int64) (models.Client, error) {
	return fetch[models.Client](ctx, h, "client", newRequest(http.MethodGet, detail(endpointClients, id)))
}

// CreateClient implements [InventoryAPI].
func (h *httpServerAdapter) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = 0
	return fetch[models.Client](ctx, h, "client", withBody(newRequest(http.MethodPost, endpointClients), client))
}

// ListUsers implements [InventoryAPI].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return fetch[[]models.User](ctx, h, "users", newRequest(http.MethodGet, endpointUsers))
}

// ListMovements implements [InventoryAPI]. The backend answers with both
// kinds at once: {"entradas": [...], "salidas": [...]}.
func (h *httpServerAdapter) ListMovements(ctx context.Context) (models.AllMovements, error) {
	return fetch[models.AllMovements](ctx, h, "movements", newRequest(http.MethodGet, endpointMovements))
}

// GetEntry implements [InventoryAPI].
func (h *httpServerAdapter) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	return fetch[models.Entry](ctx, h, "entry", newRequest(http.MethodGet, detail(endpointEntries, id)))
}

// CreateEntry implements [InventoryAPI].
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.EntryCreate) (models.Entry, error) {
	return fetch[models.Entry](ctx, h, "entry", withBody(newRequest(http.MethodPost, endpointEntries), entry))
}

// GetExit implements [InventoryAPI].
func (h *httpServerAdapter) GetExit(ctx context.Context, id int64) (models.Exit, error) {
	return fetch[models.Exit](ctx, h, "exit", newRequest(http.MethodGet, detail(endpointExits, id)))
}

// CreateExit implements [InventoryAPI].
func (h *httpServerAdapter) CreateExit(ctx context.Context, exit models.ExitCreate) (models.Exit, error) {
	return fetch[models.Exit](ctx, h, "exit", withBody(newRequest(http.MethodPost, endpointExits), exit))
}

// Dashboard implements [InventoryAPI].
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return fetch[models.Dashboard](ctx, h, "dashboard", newRequest(http.MethodGet, endpointDashboard))
}

// ListSystemVariables implements [InventoryAPI].
func (h *httpServerAdapter) ListSystemVariables(ctx context.Context) ([]models.SystemVariable, error) {
	return fetch[[]models.SystemVariable](ctx, h, "system variables", newRequest(http.MethodGet, endpointSysvars))
}

// UpdateSystemVariable implements [InventoryAPI]. PATCH sistema/variables/{id}/ {valor}.
func (h *httpServerAdapter) UpdateSystemVariable(ctx context.Context, id int64, update models.SystemVariableUpdate) (models.SystemVariable, error) {
	return fetch[models.SystemVariable](ctx, h, "system variable",
		withBody(newRequest(http.MethodPatch, detail(endpointSysvars, id)), update))
}
