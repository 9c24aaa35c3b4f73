// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// State is the lifecycle state of a session.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Resumption continues a request parked behind an in-flight refresh. It is
// called exactly once, with the new token or with the error that ended the
// refresh. Resumptions run under the manager lock and must not block or call
// back into the Manager.
type Resumption func(token string, err error)

// Admission tells a caller of BeginRefresh what to do next.
type Admission int

const (
	// AdmitLead: the caller must perform the refresh and report through the
	// ticket.
	AdmitLead Admission = iota
	// AdmitQueued: a refresh is in flight, the resumption has been queued.
	AdmitQueued
	// AdmitStale: the token changed since the failed request was sent.
	// Resend with Ticket.Token, no refresh needed.
	AdmitStale
)

func (a Admission) String() string {
	switch a {
	case AdmitLead:
		return "lead"
	case AdmitQueued:
		return "queued"
	case AdmitStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Ticket is the result of BeginRefresh.
type Ticket struct {
	Admission Admission

	// Token is the current token for AdmitStale, empty otherwise.
	Token string

	m   *Manager
	gen uint64
}

// Manager owns the access token and the refresh gate. The zero value is not
// usable, construct it with NewManager.
type Manager struct {
	mu      sync.Mutex
	token   string
	state   State
	pending []Resumption

	// gen is bumped by Authenticate and Logout so a refresh that began
	// before them cannot overwrite their result.
	gen uint64

	now    func() time.Time
	logger *logger.Logger
}

// NewManager returns an anonymous session.
func NewManager(log *logger.Logger) *Manager {
	return &Manager{
		state:  StateAnonymous,
		now:    time.Now,
		logger: log,
	}
}

// Token returns the current access token or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Authenticate stores a token obtained by login or restored from the local
// store. A refresh in flight is superseded and its queued requests resume
// with token.
func (m *Manager) Authenticate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.token = token
	if token == "" {
		m.state = StateAnonymous
		m.release("", ErrLoggedOut)
		return
	}

	m.state = StateAuthenticated
	m.release(token, nil)
	m.logger.Debug().Msg("session authenticated")
}

// Logout clears the token. Requests queued behind a refresh in flight
// resume with ErrLoggedOut.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.token = ""
	m.state = StateAnonymous
	m.release("", ErrLoggedOut)
	m.logger.Debug().Msg("session cleared")
}

// BeginRefresh is called after a request sent with usedToken was rejected
// as unauthenticated. The check of the refresh state and the enqueue happen
// under one lock, so at most one caller is ever admitted as leader while a
// refresh is in flight.
//
// resume is kept only for AdmitQueued.
func (m *Manager) BeginRefresh(usedToken string, resume Resumption) *Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateRefreshing {
		m.pending = append(m.pending, resume)
		m.logger.Debug().Int("queued", len(m.pending)).Msg("request queued behind token refresh")
		return &Ticket{Admission: AdmitQueued, m: m, gen: m.gen}
	}

	if m.token != "" && m.token != usedToken {
		return &Ticket{Admission: AdmitStale, Token: m.token, m: m, gen: m.gen}
	}

	m.state = StateRefreshing
	m.logger.Debug().Msg("token refresh started")
	return &Ticket{Admission: AdmitLead, m: m, gen: m.gen}
}

// Complete stores the refreshed token and resumes the queued requests in
// the order they were queued, then leaves the Refreshing state.
func (t *Ticket) Complete(token string) error {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if !t.current() {
		return ErrRefreshSuperseded
	}

	m.token = token
	m.release(token, nil)
	m.state = StateAuthenticated
	m.logger.Debug().Msg("token refresh succeeded")
	return nil
}

// Fail clears the session and resumes the queued requests with
// ErrSessionExpired. cause is only logged.
func (t *Ticket) Fail(cause error) error {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if !t.current() {
		return ErrRefreshSuperseded
	}

	m.token = ""
	m.release("", ErrSessionExpired)
	m.state = StateAnonymous
	m.logger.Warn().Err(cause).Msg("token refresh failed, session cleared")
	return nil
}

// current reports whether the ticket's refresh is still the one in flight.
// Caller holds m.mu.
func (t *Ticket) current() bool {
	return t.Admission == AdmitLead && t.gen == t.m.gen && t.m.state == StateRefreshing
}

// release resumes and drops every queued request. Caller holds m.mu.
func (m *Manager) release(token string, err error) {
	for _, resume := range m.pending {
		resume(token, err)
	}
	m.pending = nil
}

// IsSessionValid decodes the exp claim of the current token without
// verifying the signature and reports whether it lies in the future. A
// token without exp is valid, an undecodable one is not.
//
// It is a hint for proactive refresh only. The 401 path is authoritative.
func (m *Manager) IsSessionValid() bool {
	token := m.Token()
	if token == "" {
		return false
	}

	parsed, err := utils.ParseUnverifiedJWT(token)
	if err != nil {
		return false
	}

	return !parsed.Expired(m.now())
}

// Expiry returns the exp claim of the current token. ok is false when there
// is no token, it cannot be decoded or carries no exp.
func (m *Manager) Expiry() (exp time.Time, ok bool) {
	token := m.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, err := utils.ParseUnverifiedJWT(token)
	if err != nil || parsed.ExpiresAt == nil {
		return time.Time{}, false
	}

	return parsed.ExpiresAt.Time, true
}
