package mockapi

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func (b *memoryBackend) Movements(ctx context.Context) models.AllMovements {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return models.AllMovements{
		Entries: slices.Clone(b.entries),
		Exits:   slices.Clone(b.exits),
	}
}

func (b *memoryBackend) Entry(ctx context.Context, id int64) (models.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := slices.IndexFunc(b.entries, func(e models.Entry) bool { return e.ID == id })
	if i < 0 {
		return models.Entry{}, ErrNotFound
	}
	return b.entries[i], nil
}

func (b *memoryBackend) Exit(ctx context.Context, id int64) (models.Exit, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := slices.IndexFunc(b.exits, func(e models.Exit) bool { return e.ID == id })
	if i < 0 {
		return models.Exit{}, ErrNotFound
	}
	return b.exits[i], nil
}

// CreateEntry stores a stock-in movement and adds its quantities to the
// products. receivedBy falls back to the authenticated user.
func (b *memoryBackend) CreateEntry(ctx context.Context, userID int64, create models.EntryCreate) (models.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	receiver := create.ReceivedBy
	if receiver == 0 {
		receiver = userID
	}
	user, ok := b.userByID(receiver)
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: unknown recibido_por", ErrInvalidData)
	}

	indexes, err := b.resolveItems(create.Items)
	if err != nil {
		return models.Entry{}, err
	}

	entryType := create.EntryType
	if entryType == "" {
		entryType = models.EntryPurchase
	}

	now := b.now().UTC()
	entry := models.Entry{
		ID:            b.newID("entry"),
		EntryType:     entryType,
		InvoiceNumber: create.InvoiceNumber,
		ReceivedBy:    &user,
		Comments:      create.Comments,
		Created:       now,
	}
	for n, item := range create.Items {
		p := &b.products[indexes[n]]
		p.Available += item.Quantity
		p.Updated = now
		entry.Items = append(entry.Items, models.MovementItem{ID: b.newID("entry_item"), Product: *p, Quantity: item.Quantity})
	}
	b.entries = append(b.entries, entry)

	return entry, nil
}

// CreateExit stores a stock-out movement. The whole movement is rejected when
// any product would go below zero.
func (b *memoryBackend) CreateExit(ctx context.Context, userID int64, create models.ExitCreate) (models.Exit, error) {
	if strings.TrimSpace(create.ClientName) == "" {
		return models.Exit{}, fmt.Errorf("%w: nombre_cliente is required", ErrInvalidData)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	deliverer := create.DeliveredBy
	if deliverer == 0 {
		deliverer = userID
	}
	user, ok := b.userByID(deliverer)
	if !ok {
		return models.Exit{}, fmt.Errorf("%w: unknown entregado_por", ErrInvalidData)
	}

	indexes, err := b.resolveItems(create.Items)
	if err != nil {
		return models.Exit{}, err
	}

	requested := make(map[int]int64, len(indexes))
	for n, item := range create.Items {
		requested[indexes[n]] += item.Quantity
	}
	for i, quantity := range requested {
		if b.products[i].Available < quantity {
			return models.Exit{}, fmt.Errorf("%w: %s has %d, requested %d",
				ErrInsufficientStock, b.products[i].SKU, b.products[i].Available, quantity)
		}
	}

	exitType := create.ExitType
	if exitType == "" {
		exitType = models.ExitProject
	}

	now := b.now().UTC()
	exit := models.Exit{
		ID:               b.newID("exit"),
		ExitType:         exitType,
		ClientName:       create.ClientName,
		Technician:       create.Technician,
		DeliveredBy:      &user,
		ReceivedBy:       create.ReceivedBy,
		RequiresApproval: create.RequiresApproval,
		Comments:         create.Comments,
		Created:          now,
	}
	for n, item := range create.Items {
		p := &b.products[indexes[n]]
		p.Available -= item.Quantity
		p.Updated = now
		exit.Items = append(exit.Items, models.MovementItem{ID: b.newID("exit_item"), Product: *p, Quantity: item.Quantity})
	}
	b.exits = append(b.exits, exit)

	return exit, nil
}

// resolveItems validates movement lines and maps them to product positions.
// Callers hold mu.
func (b *memoryBackend) resolveItems(items []models.MovementItemCreate) ([]int, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", ErrInvalidData)
	}

	indexes := make([]int, len(items))
	for n, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad must be positive", ErrInvalidData)
		}
		i := b.productIndex(item.Product)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown producto %d", ErrInvalidData, item.Product)
		}
		indexes[n] = i
	}
	return indexes, nil
}
