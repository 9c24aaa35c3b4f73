// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MovementKind tells stock-in ("entrada") and stock-out ("salida") apart.
type MovementKind string

const (
	MovementEntry MovementKind = "entrada"
	MovementExit  MovementKind = "salida"
)

// EntryType is the reason of a stock-in movement.
type EntryType string

const (
	EntryPurchase   EntryType = "compra"
	EntryReturn     EntryType = "devolucion"
	EntryAdjustment EntryType = "ajuste"
)

// ExitType is the reason of a stock-out movement.
type ExitType string

const (
	ExitProject    ExitType = "project"
	ExitRental     ExitType = "rental"
	ExitInternal   ExitType = "internal"
	ExitAdjustment ExitType = "adjustment"
)

// MovementItemCreate is one product line of a new movement.
type MovementItemCreate struct {
	Product  int64 `json:"producto"`
	Quantity int64 `json:"cantidad"`
}

// MovementItem is one product line of a stored movement, product expanded.
type MovementItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"producto"`
	Quantity int64   `json:"cantidad"`
}

// Entry is a stock-in movement ("movimiento de entrada").
type Entry struct {
	ID            int64          `json:"id"`
	EntryType     EntryType      `json:"tipo_entrada"`
	InvoiceNumber string         `json:"numero_factura"`
	ReceivedBy    *User          `json:"recibido_por"`
	ApprovedBy    *User          `json:"user_aprueba"`
	Comments      *string        `json:"comentarios"`
	Approved      bool           `json:"aprobado"`
	ApprovedAt    *time.Time     `json:"aprobado_fecha"`
	Created       time.Time      `json:"creado"`
	Items         []MovementItem `json:"items"`
}

// EntryCreate is the body of the create-entry request.
type EntryCreate struct {
	EntryType     EntryType            `json:"tipo_entrada,omitempty"`
	InvoiceNumber string               `json:"numero_factura"`
	ReceivedBy    int64                `json:"recibido_por,omitempty"`
	Comments      *string              `json:"comentarios,omitempty"`
	Items         []MovementItemCreate `json:"items"`
}

// Exit is a stock-out movement ("movimiento de salida").
type Exit struct {
	ID               int64          `json:"id"`
	ExitType         ExitType       `json:"tipo_salida"`
	ClientName       string         `json:"nombre_cliente"`
	Technician       *string        `json:"tecnico"`
	DeliveredBy      *User          `json:"entregado_por"`
	ReceivedBy       *string        `json:"recibido_por"`
	RequiresApproval bool           `json:"requiere_aprobacion"`
	ApprovedBy       *User          `json:"user_aprueba"`
	Comments         *string        `json:"comentarios"`
	Approved         bool           `json:"aprobado"`
	ApprovedAt       *time.Time     `json:"aprobado_fecha"`
	Created          time.Time      `json:"creado"`
	Items            []MovementItem `json:"items"`
}

// ExitCreate is the body of the create-exit request.
type ExitCreate struct {
	ExitType         ExitType             `json:"tipo_salida,omitempty"`
	ClientName       string               `json:"nombre_cliente"`
	Technician       *string              `json:"tecnico,omitempty"`
	DeliveredBy      int64                `json:"entregado_por,omitempty"`
	ReceivedBy       *string              `json:"recibido_por,omitempty"`
	RequiresApproval bool                 `json:"requiere_aprobacion"`
	Comments         *string              `json:"comentarios,omitempty"`
	Items            []MovementItemCreate `json:"items"`
}

// AllMovements is the payload of the combined movements endpoint.
type AllMovements struct {
	Entries []Entry `json:"entradas"`
	Exits   []Exit  `json:"salidas"`
}

// MovementView is an entry or an exit flattened into one row of the
// unified movements list.
type MovementView struct {
	// ID is prefixed by kind ("e-12", "s-7") so both sequences can share a list.
	ID       string
	Date     time.Time
	Kind     MovementKind
	User     string
	Comments string
	Items    []MovementItem

	Entry *Entry
	Exit  *Exit
}

// MovementFilter selects rows of the unified list.
type MovementFilter struct {
	// Entries and Exits toggle each kind. Both false yields an empty list.
	Entries bool
	Exits   bool

	// Query matches case-insensitively against id, user, comments and the
	// description and internal code of every product line.
	Query string
}

// ScannedItem is a product line as captured at the counter: a scanned or
// typed SKU and a quantity, not yet resolved to a product id.
type ScannedItem struct {
	SKU      string
	Quantity int64
}
