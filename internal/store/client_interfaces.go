package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the one session of the client between runs.
type LocalSessionRepository interface {
	// SaveSession replaces the stored session and its cookies.
	SaveSession(ctx context.Context, session models.LocalSession) error
	// LoadSession returns ErrLocalSessionNotFound when nothing is stored.
	LoadSession(ctx context.Context) (models.LocalSession, error)
	// ClearSession removes the session and its cookies. Clearing an empty
	// store is not an error.
	ClearSession(ctx context.Context) error
}
