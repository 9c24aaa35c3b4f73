// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the authenticated HTTP client of the inventory
// REST API.
//
// Every resource call goes through [ServerAdapter.Do], which attaches the
// bearer token held by the session manager and recovers once from an HTTP
// 401 by refreshing the token. Concurrent 401s share a single refresh call:
// requests arriving while it is in flight are queued and replayed in FIFO
// order with the new token. When the refresh fails the session is cleared,
// queued requests fail with [ErrSessionExpired] and the handler registered
// with SetSessionExpiredHandler is invoked.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404). Response bodies are decoded strictly; schema mismatches surface as
// [*DecodeError].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthClient manages the client session against the inventory API.
type AuthClient interface {
	// Login posts the credentials and stores the returned access token.
	// The refresh proof is kept by the cookie jar.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Logout invalidates the server-side session. The local session is
	// cleared even if the call fails.
	Logout(ctx context.Context) error

	// EnsureSession returns nil when the held token is not expired, or after
	// a successful refresh. On failure the session is cleared, the session
	// expired handler is invoked and [ErrSessionExpired] is returned.
	EnsureSession(ctx context.Context) error

	// EnsureSessionSilent is EnsureSession without the session expired
	// handler. It reports whether a usable session exists.
	EnsureSessionSilent(ctx context.Context) bool

	// Refresh obtains a new access token even if the current one is still
	// valid. It shares the refresh gate with the 401 recovery. On failure the
	// session is cleared, the session expired handler is invoked and
	// [ErrSessionExpired] is returned.
	Refresh(ctx context.Context) error

	// IsSessionValid decodes the token expiry locally. It is a hint only.
	IsSessionValid() bool

	// SessionExpiry returns the exp claim of the held token.
	SessionExpiry() (time.Time, bool)

	// Token returns the held access token or "".
	Token() string

	// SessionCookies returns the cookies the jar would send to the refresh
	// endpoint, for persistence between runs.
	SessionCookies() []models.SessionCookie

	// RestoreSession loads a persisted token and refresh cookies.
	RestoreSession(token string, cookies []models.SessionCookie)

	// SetSessionExpiredHandler registers the callback run once per failed
	// refresh, the login redirect of the application.
	SetSessionExpiredHandler(fn func())
}

// InventoryAPI is the typed surface of the inventory resources.
type InventoryAPI interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error)
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	DeactivateEquipment(ctx context.Context, id int64) error

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier models.SupplierCreate) (models.Supplier, error)

	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	ListUsers(ctx context.Context) ([]models.User, error)

	ListMovements(ctx context.Context) (models.AllMovements, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	CreateEntry(ctx context.Context, entry models.EntryCreate) (models.Entry, error)
	GetExit(ctx context.Context, id int64) (models.Exit, error)
	CreateExit(ctx context.Context, exit models.ExitCreate) (models.Exit, error)

	Dashboard(ctx context.Context) (models.Dashboard, error)

	ListSystemVariables(ctx context.Context) ([]models.SystemVariable, error)
	UpdateSystemVariable(ctx context.Context, id int64, update models.SystemVariableUpdate) (models.SystemVariable, error)
}
