// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProductStatus is the lifecycle status of a catalog product.
type ProductStatus string

const (
	ProductActive       ProductStatus = "activo"
	ProductInactive     ProductStatus = "inactivo"
	ProductDiscontinued ProductStatus = "descontinuado"
)

// Category groups products ("categoria").
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

// Brand is a hardware brand ("marca").
type Brand struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

// BrandUpdate is the partial body of the rename-brand request.
type BrandUpdate struct {
	Name string `json:"nombre"`
}

// Equipment is a device model of a brand ("equipo") products are compatible with.
type Equipment struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	Brand       Brand   `json:"marca"`
}

// EquipmentStatus is the partial body that switches equipment on or off.
// The backend hides inactive equipment from its list.
type EquipmentStatus struct {
	Active bool `json:"activo"`
}

// Supplier is a product supplier ("proveedor").
type Supplier struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	ContactName *string `json:"nombre_contacto"`
	Phone       *string `json:"telefono"`
	Email       *string `json:"correo"`
	Address     *string `json:"direccion"`
	Active      bool    `json:"activo"`
}

// SupplierCreate is the body of the create-supplier request.
type SupplierCreate struct {
	Name        string  `json:"nombre"`
	ContactName *string `json:"nombre_contacto,omitempty"`
	Phone       *string `json:"telefono,omitempty"`
	Email       *string `json:"correo,omitempty"`
	Address     *string `json:"direccion,omitempty"`
	Active      bool    `json:"activo"`
}

// Product is a catalog product as returned by the backend, with its
// category, equipment and supplier expanded.
type Product struct {
	ID           int64         `json:"id"`
	InternalCode string        `json:"codigo_interno"`
	Description  string        `json:"descripcion"`
	Category     Category      `json:"categoria"`
	Equipment    Equipment     `json:"equipo"`
	MinStock     int64         `json:"min_stock"`
	Supplier     *Supplier     `json:"proveedor"`
	SKU          string        `json:"sku"`
	Unit         string        `json:"unidad_medida"`
	Status       ProductStatus `json:"status"`
	Available    int64         `json:"cantidad_disponible"`
	Created      time.Time     `json:"creado"`
	Updated      time.Time     `json:"actualizado"`
}

// LowStock reports whether the available quantity is under the minimum.
func (p Product) LowStock() bool {
	return p.Available < p.MinStock
}

// ProductCreate is the body of the create-product request. Related entities
// are referenced by id.
type ProductCreate struct {
	InternalCode string        `json:"codigo_interno"`
	Description  string        `json:"descripcion"`
	Category     int64         `json:"categoria"`
	Equipment    int64         `json:"equipo"`
	MinStock     int64         `json:"min_stock"`
	Supplier     *int64        `json:"proveedor,omitempty"`
	SKU          string        `json:"sku"`
	Unit         string        `json:"unidad_medida,omitempty"`
	Status       ProductStatus `json:"status,omitempty"`
}

// ProductFilter narrows the product list. Empty fields are not sent.
type ProductFilter struct {
	SKU string
}
