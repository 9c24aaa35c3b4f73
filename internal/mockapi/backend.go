package mockapi

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Backend is what the HTTP handlers of the stub need.
type Backend interface {
	// Login checks the credentials and opens a refresh session. The returned
	// refresh id goes into the refresh cookie.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, string, error)
	// Refresh exchanges a refresh id for a new access token and a new
	// refresh id. The old one stops working.
	Refresh(ctx context.Context, refreshID string) (models.RefreshResponse, string, error)
	// Logout ends the refresh session. Unknown ids are ignored.
	Logout(ctx context.Context, refreshID string)
	// Authenticate validates an access token and returns its user id.
	Authenticate(ctx context.Context, accessToken string) (int64, error)

	Products(ctx context.Context, filter models.ProductFilter) []models.Product
	Product(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	Categories(ctx context.Context) []models.Category
	Brands(ctx context.Context) []models.Brand
	RenameBrand(ctx context.Context, id int64, name string) (models.Brand, error)
	Equipment(ctx context.Context) []models.Equipment
	SetEquipmentActive(ctx context.Context, id int64, active bool) error

	Suppliers(ctx context.Context) []models.Supplier
	CreateSupplier(ctx context.Context, supplier models.SupplierCreate) (models.Supplier, error)

	Clients(ctx context.Context) []models.Client
	Client(ctx context.Context, id int64) (models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	Users(ctx context.Context) []models.User

	Movements(ctx context.Context) models.AllMovements
	Entry(ctx context.Context, id int64) (models.Entry, error)
	CreateEntry(ctx context.Context, userID int64, entry models.EntryCreate) (models.Entry, error)
	Exit(ctx context.Context, id int64) (models.Exit, error)
	CreateExit(ctx context.Context, userID int64, exit models.ExitCreate) (models.Exit, error)

	Dashboard(ctx context.Context) models.Dashboard

	SystemVariables(ctx context.Context) []models.SystemVariable
	SetSystemVariable(ctx context.Context, id int64, value *string) (models.SystemVariable, error)
}

type account struct {
	user         models.User
	passwordHash []byte
	avatar       string
}

type refreshSession struct {
	userID  int64
	expires time.Time
}

type memoryBackend struct {
	auth config.MockAPIAuth
	ids  *utils.UUIDGenerator
	now  func() time.Time

	mu       sync.RWMutex
	accounts map[string]*account
	refresh  map[string]refreshSession

	categories []models.Category
	brands     []models.Brand
	equipment  []models.Equipment
	inactive   map[int64]bool
	suppliers  []models.Supplier
	products   []models.Product
	clients    []models.Client
	entries    []models.Entry
	exits      []models.Exit
	variables  []models.SystemVariable
	nextID     map[string]int64

	logger *logger.Logger
}

type options struct {
	passwordCost int
	now          func() time.Time
}

// Option tunes a backend created by NewBackend.
type Option func(*options)

// WithPasswordCost sets the bcrypt cost of the seeded passwords. Tests use
// bcrypt.MinCost.
func WithPasswordCost(cost int) Option {
	return func(o *options) { o.passwordCost = cost }
}

// WithClock replaces time.Now for refresh expiry and record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewBackend creates a backend seeded with demo users and inventory data.
func NewBackend(cfg config.MockAPIAuth, logger *logger.Logger, opts ...Option) (Backend, error) {
	o := options{passwordCost: bcrypt.DefaultCost, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return newMemoryBackend(cfg, o.passwordCost, o.now, logger)
}

func newMemoryBackend(cfg config.MockAPIAuth, passwordCost int, now func() time.Time, logger *logger.Logger) (*memoryBackend, error) {
	b := &memoryBackend{
		auth:     cfg,
		ids:      utils.NewUUIDGenerator(),
		now:      now,
		accounts: make(map[string]*account),
		refresh:  make(map[string]refreshSession),
		inactive: make(map[int64]bool),
		nextID:   make(map[string]int64),
		logger:   logger,
	}

	if err := b.seed(passwordCost); err != nil {
		return nil, err
	}

	logger.Info().Int("users", len(b.accounts)).Int("products", len(b.products)).Msg("mock backend seeded")
	return b, nil
}

// newID returns the next id of the named sequence. Callers hold mu.
func (b *memoryBackend) newID(sequence string) int64 {
	b.nextID[sequence]++
	return b.nextID[sequence]
}
