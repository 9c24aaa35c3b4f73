// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(logger.Nop())
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("stock-api", 1, ttl, "key")
	require.NoError(t, err)
	return token.SignedString
}

type resumed struct {
	name  string
	token string
	err   error
}

// recorder collects resumptions in call order.
type recorder struct {
	mu    sync.Mutex
	calls []resumed
}

func (r *recorder) resumption(name string) Resumption {
	return func(token string, err error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, resumed{name: name, token: token, err: err})
	}
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.name)
	}
	return out
}

// ── State machine ───────────────────────────────────────────────────────────

func TestManager_StartsAnonymous(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, m.Token())
	assert.False(t, m.IsSessionValid())
}

func TestManager_AuthenticateAndLogout(t *testing.T) {
	m := newTestManager(t)

	m.Authenticate("T1")
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "T1", m.Token())

	m.Logout()
	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, m.Token())
}

func TestManager_AuthenticateEmptyTokenIsAnonymous(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	m.Authenticate("")

	assert.Equal(t, StateAnonymous, m.State())
}

// ── Refresh gate ────────────────────────────────────────────────────────────

func TestBeginRefresh_FirstCallerLeads(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	ticket := m.BeginRefresh("T1", nil)

	assert.Equal(t, AdmitLead, ticket.Admission)
	assert.Equal(t, StateRefreshing, m.State())
}

func TestBeginRefresh_AnonymousCallerLeads(t *testing.T) {
	m := newTestManager(t)

	ticket := m.BeginRefresh("", nil)

	assert.Equal(t, AdmitLead, ticket.Admission)
}

func TestBeginRefresh_QueuesWhileRefreshing(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	queued := m.BeginRefresh("T1", rec.resumption("B"))

	assert.Equal(t, AdmitLead, lead.Admission)
	assert.Equal(t, AdmitQueued, queued.Admission)
	assert.Empty(t, rec.names(), "queued resumption must wait for the outcome")
}

func TestBeginRefresh_StaleTokenResendsWithoutRefresh(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	lead := m.BeginRefresh("T1", nil)
	require.NoError(t, lead.Complete("T2"))

	ticket := m.BeginRefresh("T1", nil)

	assert.Equal(t, AdmitStale, ticket.Admission)
	assert.Equal(t, "T2", ticket.Token)
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestBeginRefresh_AtMostOneLeader(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	const n = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		leaders int
		queued  int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket := m.BeginRefresh("T1", func(string, error) {})
			mu.Lock()
			defer mu.Unlock()
			switch ticket.Admission {
			case AdmitLead:
				leaders++
			case AdmitQueued:
				queued++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, leaders)
	assert.Equal(t, n-1, queued)
}

// ── Outcomes ────────────────────────────────────────────────────────────────

func TestComplete_ReleasesQueueInFIFOOrder(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	m.BeginRefresh("T1", rec.resumption("A"))
	m.BeginRefresh("T1", rec.resumption("B"))
	m.BeginRefresh("T1", rec.resumption("C"))

	require.NoError(t, lead.Complete("T2"))

	assert.Equal(t, []string{"A", "B", "C"}, rec.names())
	for _, c := range rec.calls {
		assert.Equal(t, "T2", c.token)
		assert.NoError(t, c.err)
	}
	assert.Equal(t, "T2", m.Token())
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestComplete_ResumptionsSeeNewToken(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	lead := m.BeginRefresh("T1", nil)
	var seen string
	m.BeginRefresh("T1", func(token string, _ error) {
		seen = token
	})
	require.NoError(t, lead.Complete("T2"))

	assert.Equal(t, "T2", seen)
}

func TestFail_ClearsSessionAndRejectsQueue(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	m.BeginRefresh("T1", rec.resumption("A"))
	m.BeginRefresh("T1", rec.resumption("B"))

	require.NoError(t, lead.Fail(errors.New("refresh returned 400")))

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, m.Token())
	require.Len(t, rec.calls, 2)
	for _, c := range rec.calls {
		assert.ErrorIs(t, c.err, ErrSessionExpired)
		assert.Empty(t, c.token)
	}
}

func TestOutcome_ReportedTwiceIsSuperseded(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	lead := m.BeginRefresh("T1", nil)
	require.NoError(t, lead.Complete("T2"))

	assert.ErrorIs(t, lead.Complete("T3"), ErrRefreshSuperseded)
	assert.ErrorIs(t, lead.Fail(errors.New("late")), ErrRefreshSuperseded)
	assert.Equal(t, "T2", m.Token())
}

func TestQueuedTicketCannotReportOutcome(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")

	m.BeginRefresh("T1", nil)
	queued := m.BeginRefresh("T1", func(string, error) {})

	assert.ErrorIs(t, queued.Complete("T2"), ErrRefreshSuperseded)
	assert.Equal(t, StateRefreshing, m.State())
}

func TestLogout_SupersedesRefresh(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	m.BeginRefresh("T1", rec.resumption("A"))

	m.Logout()

	require.Len(t, rec.calls, 1)
	assert.ErrorIs(t, rec.calls[0].err, ErrLoggedOut)

	assert.ErrorIs(t, lead.Complete("T2"), ErrRefreshSuperseded)
	assert.Empty(t, m.Token(), "a refresh that began before logout must not log the user back in")
	assert.Equal(t, StateAnonymous, m.State())
}

func TestAuthenticate_SupersedesRefresh(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	m.BeginRefresh("T1", rec.resumption("A"))

	m.Authenticate("T9")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "T9", rec.calls[0].token)
	assert.ErrorIs(t, lead.Fail(errors.New("late")), ErrRefreshSuperseded)
	assert.Equal(t, "T9", m.Token())
}

func TestQueueIsEmptyAfterRelease(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate("T1")
	rec := &recorder{}

	lead := m.BeginRefresh("T1", nil)
	m.BeginRefresh("T1", rec.resumption("A"))
	require.NoError(t, lead.Complete("T2"))

	second := m.BeginRefresh("T2", nil)
	require.NoError(t, second.Complete("T3"))

	assert.Equal(t, []string{"A"}, rec.names(), "a resumption fires exactly once")
}

// ── Expiry ──────────────────────────────────────────────────────────────────

func TestIsSessionValid(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  bool
	}{
		{name: "no token", token: func(*testing.T) string { return "" }, want: false},
		{name: "future exp", token: func(t *testing.T) string { return signedToken(t, time.Hour) }, want: true},
		{name: "past exp", token: func(t *testing.T) string { return signedToken(t, -time.Minute) }, want: false},
		{name: "undecodable", token: func(*testing.T) string { return "not-a-jwt" }, want: false},
		{
			// {"alg":"HS256","typ":"JWT"}.{"sub":"1"}
			name:  "no exp claim",
			token: func(*testing.T) string { return "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.c2ln" },
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			m.Authenticate(tt.token(t))

			assert.Equal(t, tt.want, m.IsSessionValid())
		})
	}
}

func TestIsSessionValid_UsesClock(t *testing.T) {
	m := newTestManager(t)
	m.Authenticate(signedToken(t, time.Hour))

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.False(t, m.IsSessionValid())
}

func TestExpiry(t *testing.T) {
	m := newTestManager(t)

	_, ok := m.Expiry()
	assert.False(t, ok)

	m.Authenticate(signedToken(t, time.Hour))
	exp, ok := m.Expiry()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "refreshing", StateRefreshing.String())
	assert.Equal(t, "stale", AdmitStale.String())
}
