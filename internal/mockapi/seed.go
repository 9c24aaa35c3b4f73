package mockapi

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-stock-keeper/models"
)

type demoUser struct {
	username string
	password string
	email    string
	role     models.UserRole
}

var demoUsers = []demoUser{
	{username: "admin", password: "admin123", email: "admin@stock.local", role: models.RoleAdmin},
	{username: "operador", password: "operador123", email: "operador@stock.local", role: models.RoleOperator},
	{username: "consulta", password: "consulta123", email: "consulta@stock.local", role: models.RoleReadOnly},
}

func ptr[T any](v T) *T { return &v }

func (b *memoryBackend) seed(passwordCost int) error {
	for _, demo := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.password), passwordCost)
		if err != nil {
			return fmt.Errorf("hash password of %s: %w", demo.username, err)
		}

		id := b.newID("user")
		avatar := "/media/avatars/" + demo.username + ".png"
		b.accounts[demo.username] = &account{
			user: models.User{
				ID:       id,
				Username: demo.username,
				Email:    demo.email,
				Profile:  &models.UserProfile{ID: id, Role: demo.role, Avatar: &avatar, Branches: []int64{1}},
			},
			passwordHash: hash,
			avatar:       avatar,
		}
	}

	for _, name := range []string{"Toner", "Refacciones", "Equipos"} {
		b.categories = append(b.categories, models.Category{ID: b.newID("category"), Name: name})
	}
	for _, name := range []string{"HP", "Brother"} {
		b.brands = append(b.brands, models.Brand{ID: b.newID("brand"), Name: name})
	}
	b.equipment = []models.Equipment{
		{ID: b.newID("equipment"), Name: "LaserJet M404", Brand: b.brands[0]},
		{ID: b.newID("equipment"), Name: "HL-L2350", Brand: b.brands[1]},
	}
	b.suppliers = []models.Supplier{
		{ID: b.newID("supplier"), Name: "Distribuidora Norte", ContactName: ptr("Laura Pérez"), Phone: ptr("5551234567"), Active: true},
		{ID: b.newID("supplier"), Name: "Suministros del Bajío", Email: ptr("ventas@bajio.mx"), Active: true},
	}

	created := b.now().Add(-72 * time.Hour).UTC().Truncate(time.Second)
	for _, p := range []struct {
		sku, code, description string
		category, equipment    int
		minStock, available    int64
	}{
		{sku: "7501000000011", code: "TON-001", description: "Tóner negro 58A", category: 0, equipment: 0, minStock: 5, available: 12},
		{sku: "7501000000028", code: "TON-002", description: "Tóner TN-760", category: 0, equipment: 1, minStock: 5, available: 3},
		{sku: "7501000000035", code: "REF-001", description: "Fusor M404", category: 1, equipment: 0, minStock: 2, available: 1},
		{sku: "7501000000042", code: "EQP-001", description: "Impresora HL-L2350", category: 2, equipment: 1, minStock: 1, available: 4},
	} {
		b.products = append(b.products, models.Product{
			ID:           b.newID("product"),
			InternalCode: p.code,
			Description:  p.description,
			Category:     b.categories[p.category],
			Equipment:    b.equipment[p.equipment],
			MinStock:     p.minStock,
			Supplier:     ptr(b.suppliers[0]),
			SKU:          p.sku,
			Unit:         "pieza",
			Status:       models.ProductActive,
			Available:    p.available,
			Created:      created,
			Updated:      created,
		})
	}

	b.clients = []models.Client{
		{ID: b.newID("client"), Name: "Papelería Central", Phone: "5550001111", Email: "compras@central.mx", RFC: "PCE010101AAA", Active: true},
		{ID: b.newID("client"), Name: "Despacho Ruiz", Phone: "5550002222", Email: "admin@ruiz.mx", RFC: "DRU020202BBB", Special: true, Discounts: "10%", Active: true},
	}

	admin := b.accounts["admin"].user
	operator := b.accounts["operador"].user
	b.entries = []models.Entry{{
		ID:            b.newID("entry"),
		EntryType:     models.EntryPurchase,
		InvoiceNumber: "F-1001",
		ReceivedBy:    &admin,
		Comments:      ptr("Compra inicial"),
		Approved:      true,
		Created:       created,
		Items:         []models.MovementItem{{ID: b.newID("entry_item"), Product: b.products[0], Quantity: 10}},
	}}
	b.exits = []models.Exit{{
		ID:          b.newID("exit"),
		ExitType:    models.ExitProject,
		ClientName:  b.clients[0].Name,
		DeliveredBy: &operator,
		Created:     created.Add(24 * time.Hour),
		Items:       []models.MovementItem{{ID: b.newID("exit_item"), Product: b.products[1], Quantity: 2}},
	}}

	b.variables = []models.SystemVariable{
		{ID: b.newID("variable"), Key: "empresa_nombre", Value: ptr("Stock Keeper"), Description: ptr("Nombre mostrado en reportes"), Updated: created},
		{ID: b.newID("variable"), Key: "iva", Value: ptr("16"), Updated: created},
	}

	return nil
}
