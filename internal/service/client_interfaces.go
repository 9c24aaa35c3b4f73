package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for logging in and
// keeping the session across runs of the client.
type ClientAuthService interface {
	// Login authenticates against the server and persists the new session
	// (token, profile and refresh cookies) to the local store.
	// Returns ErrWrongCredentials when the server rejects the credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.LocalSession, error)

	// Logout invalidates the server session and clears the local one. The
	// local session is cleared even if the server call fails.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted session into the adapter.
	// Returns ErrNoLocalSession when the user never logged in or logged out.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Guard makes sure the session is usable before a protected command,
	// refreshing the access token if it is missing or expired.
	// Returns an error wrapping ErrLoginRequired when that fails.
	Guard(ctx context.Context) error

	// Persist saves the adapter's current token and cookies, which change on
	// every refresh. An anonymous session clears the local store instead.
	Persist(ctx context.Context) error
}

// ClientCatalogService loads the lookup lists used to build forms and filters.
type ClientCatalogService interface {
	// Load fetches all catalogs concurrently. The first failure cancels the
	// remaining requests and is returned.
	Load(ctx context.Context) (models.Catalogs, error)
}

// ClientInventoryService exposes products, parties, the dashboard and the
// system variables.
type ClientInventoryService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)

	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// RenameBrand returns ErrEmptyName for a blank name without calling the API.
	RenameBrand(ctx context.Context, id int64, name string) (models.Brand, error)
	// DeactivateEquipment hides the equipment from the catalogs. Equipment
	// is never deleted.
	DeactivateEquipment(ctx context.Context, id int64) error

	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier models.SupplierCreate) (models.Supplier, error)

	ListSystemVariables(ctx context.Context) ([]models.SystemVariable, error)
	UpdateSystemVariable(ctx context.Context, id int64, update models.SystemVariableUpdate) (models.SystemVariable, error)
}

// ClientMovementService works with stock entries and exits.
type ClientMovementService interface {
	// List returns entries and exits as one list, newest first.
	List(ctx context.Context, filter models.MovementFilter) ([]models.MovementView, error)

	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	GetExit(ctx context.Context, id int64) (models.Exit, error)

	// ResolveScan looks the scanned SKU up and turns it into a movement line.
	// Returns ErrNoProductForCode when no product has that SKU.
	ResolveScan(ctx context.Context, scan models.ScannedItem) (models.MovementItemCreate, error)

	// RegisterEntry resolves every scanned item and posts the entry.
	RegisterEntry(ctx context.Context, entry models.EntryCreate, scans []models.ScannedItem) (models.Entry, error)

	// RegisterExit resolves every scanned item and posts the exit.
	RegisterExit(ctx context.Context, exit models.ExitCreate, scans []models.ScannedItem) (models.Exit, error)
}

// ClientSessionJob defines the contract for a background worker that
// refreshes the access token shortly before it expires.
type ClientSessionJob interface {
	// Start launches the background goroutine. Every interval it checks the
	// token and refreshes it silently when it expires within skew. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval, skew time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
