package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/session"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Login implements [AuthClient]. It POSTs the credentials to the login
// endpoint without a bearer token and stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post(endpointLogin)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, &DecodeError{Resource: "login", Err: err}
	}
	if login.Access == "" {
		return models.LoginResponse{}, ErrEmptyAccessToken
	}

	h.session.Authenticate(login.Access)
	h.logger.Info().Str("func", "*httpServerAdapter.Login").Str("username", login.Username).Msg("logged in")

	return login, nil
}

// Logout implements [AuthClient]. The server call relies on the session
// cookie; the local session is cleared whatever its outcome.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.session.Logout()

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(struct{}{}).
		Post(endpointLogout)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// EnsureSession implements [AuthClient].
func (h *httpServerAdapter) EnsureSession(ctx context.Context) error {
	return h.ensureSession(ctx, true)
}

// EnsureSessionSilent implements [AuthClient]. A failed refresh still
// clears the session, only the redirect is skipped.
func (h *httpServerAdapter) EnsureSessionSilent(ctx context.Context) bool {
	return h.ensureSession(ctx, false) == nil
}

// Refresh implements [AuthClient]. A failed refresh fires the session
// expired handler once, from the leading call.
func (h *httpServerAdapter) Refresh(ctx context.Context) error {
	return h.refreshSession(ctx, true)
}

func (h *httpServerAdapter) ensureSession(ctx context.Context, redirect bool) error {
	if h.session.IsSessionValid() {
		return nil
	}
	return h.refreshSession(ctx, redirect)
}

func (h *httpServerAdapter) refreshSession(ctx context.Context, redirect bool) error {
	resumed := make(chan refreshOutcome, 1)
	ticket := h.session.BeginRefresh(h.session.Token(), func(token string, err error) {
		resumed <- refreshOutcome{token: token, err: err}
	})

	switch ticket.Admission {
	case session.AdmitStale:
		// Replaced by a refresh or login that finished in between.
		return nil

	case session.AdmitQueued:
		select {
		case <-ctx.Done():
			return ctx.Err()
		case outcome := <-resumed:
			return outcome.err
		}

	default:
		_, err := h.leadRefresh(ctx, ticket, redirect)
		return err
	}
}

// IsSessionValid implements [AuthClient].
func (h *httpServerAdapter) IsSessionValid() bool {
	return h.session.IsSessionValid()
}

// SessionExpiry implements [AuthClient].
func (h *httpServerAdapter) SessionExpiry() (time.Time, bool) {
	return h.session.Expiry()
}

// Token implements [AuthClient].
func (h *httpServerAdapter) Token() string {
	return h.session.Token()
}

// SessionCookies implements [AuthClient].
func (h *httpServerAdapter) SessionCookies() []models.SessionCookie {
	jar := h.client.GetClient().Jar
	if jar == nil {
		return nil
	}

	var cookies []models.SessionCookie
	for _, c := range jar.Cookies(h.refreshURL) {
		cookies = append(cookies, models.SessionCookie{Name: c.Name, Value: c.Value})
	}
	return cookies
}

// RestoreSession implements [AuthClient]. Cookies are re-scoped to the API
// host, the jar only keeps name and value anyway.
func (h *httpServerAdapter) RestoreSession(token string, cookies []models.SessionCookie) {
	if jar := h.client.GetClient().Jar; jar != nil && len(cookies) > 0 {
		httpCookies := make([]*http.Cookie, 0, len(cookies))
		for _, c := range cookies {
			httpCookies = append(httpCookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		jar.SetCookies(h.refreshURL, httpCookies)
	}

	if token != "" {
		h.session.Authenticate(token)
	}
}
