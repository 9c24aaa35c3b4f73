package mockapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func TestCreateEntry_AddsStock(t *testing.T) {
	b, clock := newTestBackend(t)
	ctx := context.Background()

	entry, err := b.CreateEntry(ctx, 2, models.EntryCreate{
		InvoiceNumber: "F-2000",
		Items:         []models.MovementItemCreate{{Product: 2, Quantity: 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntryPurchase, entry.EntryType)
	assert.Equal(t, "operador", entry.ReceivedBy.Username)
	assert.Equal(t, clock.t, entry.Created)
	require.Len(t, entry.Items, 1)
	assert.Equal(t, int64(10), entry.Items[0].Product.Available)

	product, err := b.Product(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.Available)

	got, err := b.Entry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Len(t, b.Movements(ctx).Entries, 2)
}

func TestCreateEntry_Invalid(t *testing.T) {
	b, _ := newTestBackend(t)

	tests := []struct {
		name   string
		userID int64
		create models.EntryCreate
	}{
		{name: "no items", userID: 1},
		{name: "zero quantity", userID: 1, create: models.EntryCreate{Items: []models.MovementItemCreate{{Product: 1}}}},
		{name: "unknown product", userID: 1, create: models.EntryCreate{Items: []models.MovementItemCreate{{Product: 99, Quantity: 1}}}},
		{name: "unknown receiver", userID: 99, create: models.EntryCreate{Items: []models.MovementItemCreate{{Product: 1, Quantity: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.CreateEntry(context.Background(), tt.userID, tt.create)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestCreateExit_RemovesStock(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	exit, err := b.CreateExit(ctx, 1, models.ExitCreate{
		ClientName: "Despacho Ruiz",
		Items:      []models.MovementItemCreate{{Product: 1, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExitProject, exit.ExitType)
	assert.Equal(t, "admin", exit.DeliveredBy.Username)

	product, err := b.Product(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), product.Available)

	_, err = b.Exit(ctx, exit.ID)
	assert.NoError(t, err)
	_, err = b.Exit(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateExit_InsufficientStockLeavesProductsUntouched(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	_, err := b.CreateExit(ctx, 1, models.ExitCreate{
		ClientName: "Papelería Central",
		Items: []models.MovementItemCreate{
			{Product: 1, Quantity: 1},
			{Product: 3, Quantity: 1},
			{Product: 3, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	first, _ := b.Product(ctx, 1)
	third, _ := b.Product(ctx, 3)
	assert.Equal(t, int64(12), first.Available)
	assert.Equal(t, int64(1), third.Available)
	assert.Len(t, b.Movements(ctx).Exits, 1)
}

func TestCreateExit_RequiresClientName(t *testing.T) {
	b, _ := newTestBackend(t)

	_, err := b.CreateExit(context.Background(), 1, models.ExitCreate{
		Items: []models.MovementItemCreate{{Product: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestDashboard(t *testing.T) {
	b, _ := newTestBackend(t)

	dashboard := b.Dashboard(context.Background())
	assert.Equal(t, models.DashboardStats{Products: 4, Lots: 1, Categories: 3, Suppliers: 2, Clients: 2}, dashboard.Stats)
	assert.Equal(t, []models.CategoryCount{
		{Name: "Toner", Count: 2},
		{Name: "Refacciones", Count: 1},
		{Name: "Equipos", Count: 1},
	}, dashboard.CategoriesChart)
	assert.Equal(t, []models.EntryTotal{{Date: "2026-03-07", Total: 10}}, dashboard.EntriesChart)
	assert.Equal(t, []models.LowStockProduct{
		{Description: "Tóner TN-760", Category: "Toner", Stock: 3},
		{Description: "Fusor M404", Category: "Refacciones", Stock: 1},
	}, dashboard.LowStock)
	assert.NotNil(t, dashboard.ClientsChart)
}
