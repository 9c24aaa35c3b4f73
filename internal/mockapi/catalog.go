package mockapi

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func (b *memoryBackend) Products(ctx context.Context, filter models.ProductFilter) []models.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()

	products := make([]models.Product, 0, len(b.products))
	for _, p := range b.products {
		if filter.SKU != "" && p.SKU != filter.SKU {
			continue
		}
		products = append(products, p)
	}
	return products
}

func (b *memoryBackend) Product(ctx context.Context, id int64) (models.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.productIndex(id)
	if i < 0 {
		return models.Product{}, ErrNotFound
	}
	return b.products[i], nil
}

func (b *memoryBackend) CreateProduct(ctx context.Context, create models.ProductCreate) (models.Product, error) {
	if strings.TrimSpace(create.Description) == "" || strings.TrimSpace(create.SKU) == "" {
		return models.Product{}, fmt.Errorf("%w: descripcion and sku are required", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if slices.ContainsFunc(b.products, func(p models.Product) bool { return p.SKU == create.SKU }) {
		return models.Product{}, fmt.Errorf("%w: producto with this sku already exists", ErrInvalidData)
	}

	ci := slices.IndexFunc(b.categories, func(c models.Category) bool { return c.ID == create.Category })
	ei := slices.IndexFunc(b.equipment, func(e models.Equipment) bool { return e.ID == create.Equipment })
	if ci < 0 || ei < 0 || b.inactive[create.Equipment] {
		return models.Product{}, fmt.Errorf("%w: unknown categoria or equipo", ErrInvalidData)
	}

	var supplier *models.Supplier
	if create.Supplier != nil {
		si := slices.IndexFunc(b.suppliers, func(s models.Supplier) bool { return s.ID == *create.Supplier })
		if si < 0 {
			return models.Product{}, fmt.Errorf("%w: unknown proveedor", ErrInvalidData)
		}
		supplier = ptr(b.suppliers[si])
	}

	status := create.Status
	if status == "" {
		status = models.ProductActive
	}
	unit := create.Unit
	if unit == "" {
		unit = "pieza"
	}

	now := b.now().UTC()
	product := models.Product{
		ID:           b.newID("product"),
		InternalCode: create.InternalCode,
		Description:  create.Description,
		Category:     b.categories[ci],
		Equipment:    b.equipment[ei],
		MinStock:     create.MinStock,
		Supplier:     supplier,
		SKU:          create.SKU,
		Unit:         unit,
		Status:       status,
		Created:      now,
		Updated:      now,
	}
	b.products = append(b.products, product)

	return product, nil
}

func (b *memoryBackend) DeleteProduct(ctx context.Context, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.productIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	b.products = slices.Delete(b.products, i, i+1)
	return nil
}

// productIndex returns the position of the product or -1. Callers hold mu.
func (b *memoryBackend) productIndex(id int64) int {
	return slices.IndexFunc(b.products, func(p models.Product) bool { return p.ID == id })
}

func (b *memoryBackend) Categories(ctx context.Context) []models.Category {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.categories)
}

func (b *memoryBackend) Brands(ctx context.Context) []models.Brand {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.brands)
}

func (b *memoryBackend) RenameBrand(ctx context.Context, id int64, name string) (models.Brand, error) {
	if strings.TrimSpace(name) == "" {
		return models.Brand{}, fmt.Errorf("%w: nombre is required", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.brands, func(br models.Brand) bool { return br.ID == id })
	if i < 0 {
		return models.Brand{}, ErrNotFound
	}
	b.brands[i].Name = name

	// equipment and products carry their own copy of the brand
	for j := range b.equipment {
		if b.equipment[j].Brand.ID == id {
			b.equipment[j].Brand.Name = name
		}
	}
	for j := range b.products {
		if b.products[j].Equipment.Brand.ID == id {
			b.products[j].Equipment.Brand.Name = name
		}
	}

	return b.brands[i], nil
}

// Equipment lists the active equipment only.
func (b *memoryBackend) Equipment(ctx context.Context) []models.Equipment {
	b.mu.RLock()
	defer b.mu.RUnlock()

	equipment := make([]models.Equipment, 0, len(b.equipment))
	for _, e := range b.equipment {
		if !b.inactive[e.ID] {
			equipment = append(equipment, e)
		}
	}
	return equipment
}

func (b *memoryBackend) SetEquipmentActive(ctx context.Context, id int64, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !slices.ContainsFunc(b.equipment, func(e models.Equipment) bool { return e.ID == id }) {
		return ErrNotFound
	}
	if active {
		delete(b.inactive, id)
	} else {
		b.inactive[id] = true
	}
	return nil
}

func (b *memoryBackend) Suppliers(ctx context.Context) []models.Supplier {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.suppliers)
}

func (b *memoryBackend) CreateSupplier(ctx context.Context, create models.SupplierCreate) (models.Supplier, error) {
	if strings.TrimSpace(create.Name) == "" {
		return models.Supplier{}, fmt.Errorf("%w: nombre is required", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	supplier := models.Supplier{
		ID:          b.newID("supplier"),
		Name:        create.Name,
		ContactName: create.ContactName,
		Phone:       create.Phone,
		Email:       create.Email,
		Address:     create.Address,
		Active:      create.Active,
	}
	b.suppliers = append(b.suppliers, supplier)
	return supplier, nil
}

func (b *memoryBackend) Clients(ctx context.Context) []models.Client {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.clients)
}

func (b *memoryBackend) Client(ctx context.Context, id int64) (models.Client, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := slices.IndexFunc(b.clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return models.Client{}, ErrNotFound
	}
	return b.clients[i], nil
}

func (b *memoryBackend) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if strings.TrimSpace(client.Name) == "" {
		return models.Client{}, fmt.Errorf("%w: nombre is required", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	client.ID = b.newID("client")
	b.clients = append(b.clients, client)
	return client, nil
}

func (b *memoryBackend) SystemVariables(ctx context.Context) []models.SystemVariable {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.variables)
}

// SetSystemVariable changes the value only. Key and description stay.
func (b *memoryBackend) SetSystemVariable(ctx context.Context, id int64, value *string) (models.SystemVariable, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.variables, func(v models.SystemVariable) bool { return v.ID == id })
	if i < 0 {
		return models.SystemVariable{}, ErrNotFound
	}

	v := &b.variables[i]
	v.Value = value
	v.Updated = b.now().UTC()

	return *v, nil
}
