package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type clientAuthService struct {
	auth     adapter.AuthClient
	sessions store.LocalSessionRepository

	// profile is the last saved session, used to skip writes that would
	// change nothing and to keep the user's profile across refreshes.
	mu      sync.Mutex
	profile models.LocalSession

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(auth adapter.AuthClient, sessions store.LocalSessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{auth: auth, sessions: sessions, now: time.Now, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.LocalSession, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return models.LocalSession{}, ErrEmptyCredentials
	}

	resp, err := a.auth.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.LocalSession{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return models.LocalSession{}, fmt.Errorf("login on server: %w", err)
	}

	session := models.LocalSession{
		AccessToken: resp.Access,
		Username:    resp.Username,
		Email:       resp.Email,
		Avatar:      resp.Avatar,
		Cookies:     a.auth.SessionCookies(),
		UpdatedAt:   a.now(),
	}
	if session.Username == "" {
		session.Username = credentials.Username
	}

	if err = a.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		// the local session goes away regardless
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("server logout failed")
	}

	a.mu.Lock()
	a.profile = models.LocalSession{}
	a.mu.Unlock()

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrNoLocalSession
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("load local session: %w", err)
	}

	a.auth.RestoreSession(session.AccessToken, session.Cookies)

	a.mu.Lock()
	a.profile = session
	a.mu.Unlock()

	return session, nil
}

func (a *clientAuthService) Guard(ctx context.Context) error {
	if err := a.auth.EnsureSession(ctx); err != nil {
		if errors.Is(err, adapter.ErrSessionExpired) || errors.Is(err, adapter.ErrLoggedOut) {
			return fmt.Errorf("%w: %w", ErrLoginRequired, err)
		}
		return err
	}

	return a.Persist(ctx)
}

func (a *clientAuthService) Persist(ctx context.Context) error {
	token := a.auth.Token()
	if token == "" {
		a.mu.Lock()
		a.profile = models.LocalSession{}
		a.mu.Unlock()

		if err := a.sessions.ClearSession(ctx); err != nil {
			return fmt.Errorf("clear local session: %w", err)
		}
		return nil
	}

	a.mu.Lock()
	session := a.profile
	a.mu.Unlock()

	cookies := a.auth.SessionCookies()
	if session.AccessToken == token && slices.Equal(session.Cookies, cookies) {
		return nil
	}

	session.AccessToken = token
	session.Cookies = cookies
	session.UpdatedAt = a.now()

	return a.save(ctx, session)
}

func (a *clientAuthService) save(ctx context.Context, session models.LocalSession) error {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save local session: %w", err)
	}

	a.mu.Lock()
	a.profile = session
	a.mu.Unlock()

	a.logger.Debug().Str("func", "*clientAuthService.save").Str("username", session.Username).Msg("local session saved")
	return nil
}
