// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// DashboardStats holds entity counters shown on the dashboard.
type DashboardStats struct {
	Products   int64 `json:"productos"`
	Lots       int64 `json:"lotes"`
	Categories int64 `json:"categorias"`
	Suppliers  int64 `json:"proveedores"`
	Clients    int64 `json:"clientes"`
}

// CategoryCount is one bar of the products-per-category chart.
type CategoryCount struct {
	Name  string `json:"nombre"`
	Count int64  `json:"cantidad"`
}

// EntryTotal is one point of the entries-over-time chart. The backend sends
// a bare date, hence the string.
type EntryTotal struct {
	Date  string `json:"fecha_creado"`
	Total int64  `json:"total"`
}

// LowStockProduct is a product under its minimum stock.
type LowStockProduct struct {
	Description string `json:"descripcion"`
	Category    string `json:"categoria__nombre"`
	Stock       int64  `json:"stock"`
}

// Dashboard is the aggregated dashboard payload.
type Dashboard struct {
	Stats           DashboardStats    `json:"stats"`
	CategoriesChart []CategoryCount   `json:"categoriasChart"`
	EntriesChart    []EntryTotal      `json:"entradasChart"`
	LowStock        []LowStockProduct `json:"productosBajos"`

	// ClientsChart has no fixed schema on the backend yet.
	ClientsChart []json.RawMessage `json:"clientesChart"`
}

// SystemVariable is a key/value setting of the backend ("variable de sistema").
type SystemVariable struct {
	ID          int64     `json:"id"`
	Key         string    `json:"clave"`
	Value       *string   `json:"valor"`
	Description *string   `json:"descripcion"`
	Updated     time.Time `json:"actualizado"`
}

// SystemVariableUpdate is the partial body of the update request. Only the
// value is changed; a nil Value clears it.
type SystemVariableUpdate struct {
	Value *string `json:"valor"`
}

// Catalogs bundles the lookup lists used to build forms and filters.
type Catalogs struct {
	Categories []Category
	Brands     []Brand
	Equipment  []Equipment
	Suppliers  []Supplier
	Users      []User
	Clients    []Client
}
