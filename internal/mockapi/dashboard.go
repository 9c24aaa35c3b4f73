package mockapi

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const dashboardDateLayout = "2006-01-02"

// Dashboard aggregates counters and charts from the current data set. Lots
// are counted as stored entry lines.
func (b *memoryBackend) Dashboard(ctx context.Context) models.Dashboard {
	b.mu.RLock()
	defer b.mu.RUnlock()

	dashboard := models.Dashboard{
		Stats: models.DashboardStats{
			Products:   int64(len(b.products)),
			Categories: int64(len(b.categories)),
			Suppliers:  int64(len(b.suppliers)),
			Clients:    int64(len(b.clients)),
		},
		CategoriesChart: []models.CategoryCount{},
		EntriesChart:    []models.EntryTotal{},
		LowStock:        []models.LowStockProduct{},
		ClientsChart:    []json.RawMessage{},
	}

	for _, c := range b.categories {
		var count int64
		for _, p := range b.products {
			if p.Category.ID == c.ID {
				count++
			}
		}
		dashboard.CategoriesChart = append(dashboard.CategoriesChart, models.CategoryCount{Name: c.Name, Count: count})
	}

	totals := make(map[string]int64)
	for _, e := range b.entries {
		dashboard.Stats.Lots += int64(len(e.Items))
		for _, item := range e.Items {
			totals[e.Created.Format(dashboardDateLayout)] += item.Quantity
		}
	}
	for date, total := range totals {
		dashboard.EntriesChart = append(dashboard.EntriesChart, models.EntryTotal{Date: date, Total: total})
	}
	slices.SortFunc(dashboard.EntriesChart, func(a, b models.EntryTotal) int { return strings.Compare(a.Date, b.Date) })

	for _, p := range b.products {
		if p.LowStock() {
			dashboard.LowStock = append(dashboard.LowStock, models.LowStockProduct{
				Description: p.Description,
				Category:    p.Category.Name,
				Stock:       p.Available,
			})
		}
	}

	return dashboard
}
