// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is a customer ("cliente") of the inventory.
type Client struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
	Address   string `json:"direccion"`
	RFC       string `json:"rfc"`
	Special   bool   `json:"cliente_especial"`
	Discounts string `json:"descuentos"`
	Active    bool   `json:"is_active"`
}
