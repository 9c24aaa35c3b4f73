// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/session"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiPrefix = "/api/v1/"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) (*httpServerAdapter, *session.Manager, *metrics.AuthMetrics) {
	t.Helper()
	log := logger.Nop()
	sess := session.NewManager(log)
	m := metrics.NewAuthMetrics(nil)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		APIURL:         serverURL + apiPrefix,
		RequestTimeout: 5 * time.Second,
	}, sess, m, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter), sess, m
}

// tokenAPI is a test backend: "token/refresh/" answers with refreshBody and
// refreshStatus, "items/" accepts only "Bearer "+valid.
type tokenAPI struct {
	valid         string
	refreshStatus int
	refreshBody   string
	refreshGate   chan struct{}

	refreshCalls atomic.Int32
	itemCalls    atomic.Int32
	unauthorized atomic.Int32

	mu         sync.Mutex
	authHeader []string
}

func (api *tokenAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(apiPrefix+"token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		api.refreshCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"), "refresh must not carry the bearer token")

		if api.refreshGate != nil {
			select {
			case <-api.refreshGate:
			case <-time.After(3 * time.Second):
				t.Error("refresh gate was never opened")
			}
		}

		w.WriteHeader(api.refreshStatus)
		_, _ = w.Write([]byte(api.refreshBody))
	})
	mux.HandleFunc(apiPrefix+"items/", func(w http.ResponseWriter, r *http.Request) {
		api.itemCalls.Add(1)
		header := r.Header.Get("Authorization")

		api.mu.Lock()
		api.authHeader = append(api.authHeader, header)
		api.mu.Unlock()

		if header != "Bearer "+api.valid {
			api.unauthorized.Add(1)
			utils.WriteDetail(w, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}
		_, _ = utils.WriteJSON(w, []string{"ok"}, http.StatusOK)
	})
	return mux
}

func (api *tokenAPI) headers() []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.authHeader...)
}

func itemsRequest() *Request {
	return newRequest(http.MethodGet, "items/")
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("stock-api", 1, ttl, "key")
	require.NoError(t, err)
	return token.SignedString
}

// ── Do ──────────────────────────────────────────────────────────────────────

func TestDo_AttachesBearerToken(t *testing.T) {
	api := &tokenAPI{valid: "T1", refreshStatus: http.StatusOK}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	resp, err := a.Do(context.Background(), itemsRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []string{"Bearer T1"}, api.headers())
	assert.Zero(t, api.refreshCalls.Load())
	assert.Zero(t, testutil.ToFloat64(m.RefreshAttempts))
}

func TestDo_NonUnauthorizedReturnedUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, http.StatusForbidden, "no permission")
	}))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	resp, err := a.Do(context.Background(), itemsRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	assert.Equal(t, session.StateAuthenticated, sess.State())
}

// Expired token, one refresh, one resend, the caller only sees the success.
func TestDo_RefreshesOnceAndResends(t *testing.T) {
	api := &tokenAPI{valid: "T2", refreshStatus: http.StatusOK, refreshBody: `{"access":"T2"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	resp, err := a.Do(context.Background(), itemsRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer T1", "Bearer T2"}, api.headers())
	assert.Equal(t, "T2", sess.Token())
	assert.Equal(t, session.StateAuthenticated, sess.State())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshAttempts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReplayedRequests))
}

// N requests faulting with 401 at the same time produce exactly one refresh.
func TestDo_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	const n = 8
	api := &tokenAPI{
		valid:         "T2",
		refreshStatus: http.StatusOK,
		refreshBody:   `{"access":"T2"}`,
		refreshGate:   make(chan struct{}),
	}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	// Hold the refresh until every request has seen its 401.
	go func() {
		assert.Eventually(t, func() bool { return api.unauthorized.Load() == n }, 3*time.Second, 5*time.Millisecond)
		close(api.refreshGate)
	}()

	var wg sync.WaitGroup
	statuses := make([]int, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := a.Do(context.Background(), itemsRequest())
			errs[i] = err
			if err == nil {
				statuses[i] = resp.StatusCode()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, http.StatusOK, statuses[i])
	}
	assert.Equal(t, int32(2*n), api.itemCalls.Load())
}

// A failed refresh clears the session, does not resend the request and
// redirects to login exactly once.
func TestDo_RefreshFailureExpiresSession(t *testing.T) {
	api := &tokenAPI{valid: "T2", refreshStatus: http.StatusBadRequest, refreshBody: `{"detail":"Token is blacklisted"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")
	var redirects atomic.Int32
	a.SetSessionExpiredHandler(func() { redirects.Add(1) })

	resp, err := a.Do(context.Background(), itemsRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), api.itemCalls.Load(), "the original request must not be resent")
	assert.Equal(t, int32(1), redirects.Load())
	assert.Equal(t, session.StateAnonymous, sess.State())
	assert.Empty(t, sess.Token())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshFailures))

	// Later requests go out without Authorization.
	_, _ = a.Do(context.Background(), itemsRequest())
	headers := api.headers()
	assert.Empty(t, headers[len(headers)-1])
}

func TestDo_EmptyAccessTokenIsRefreshFailure(t *testing.T) {
	api := &tokenAPI{valid: "T2", refreshStatus: http.StatusOK, refreshBody: `{"access":""}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	_, err := a.Do(context.Background(), itemsRequest())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, session.StateAnonymous, sess.State())
}

func TestDo_QueuedRequestsRejectedOnFailure(t *testing.T) {
	const n = 5
	api := &tokenAPI{
		valid:         "T2",
		refreshStatus: http.StatusUnauthorized,
		refreshGate:   make(chan struct{}),
	}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")
	var redirects atomic.Int32
	a.SetSessionExpiredHandler(func() { redirects.Add(1) })

	go func() {
		assert.Eventually(t, func() bool { return api.unauthorized.Load() == n }, 3*time.Second, 5*time.Millisecond)
		close(api.refreshGate)
	}()

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = a.Do(context.Background(), itemsRequest())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(1), redirects.Load())
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrSessionExpired)
	}
}

// A second 401 on a request already retried goes back to the caller.
func TestDo_NoDoubleRetry(t *testing.T) {
	api := &tokenAPI{valid: "never", refreshStatus: http.StatusOK, refreshBody: `{"access":"T2"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	resp, err := a.Do(context.Background(), itemsRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(2), api.itemCalls.Load())
}

func TestDo_AlreadyRetriedRequestSkipsRefresh(t *testing.T) {
	api := &tokenAPI{valid: "T2", refreshStatus: http.StatusOK, refreshBody: `{"access":"T2"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")
	req := itemsRequest()
	req.retried = true

	resp, err := a.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Zero(t, api.refreshCalls.Load())
	assert.Equal(t, "T1", sess.Token())
}

// A request that 401s with a token already replaced is resent without a
// new refresh.
func TestDo_StaleTokenResendsWithCurrent(t *testing.T) {
	api := &tokenAPI{valid: "T2", refreshStatus: http.StatusOK, refreshBody: `{"access":"T3"}`}
	var swapped atomic.Bool
	var a *httpServerAdapter
	var sess *session.Manager

	mux := http.NewServeMux()
	inner := api.handler(t)
	mux.HandleFunc(apiPrefix+"items/", func(w http.ResponseWriter, r *http.Request) {
		// Another goroutine refreshed while this request was on the wire.
		if swapped.CompareAndSwap(false, true) {
			sess.Authenticate("T2")
		}
		inner.ServeHTTP(w, r)
	})
	mux.Handle("/", inner)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a, sess, _ = newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	resp, err := a.Do(context.Background(), itemsRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Zero(t, api.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer T1", "Bearer T2"}, api.headers())
}

func TestDo_QueuedWaiterHonoursContext(t *testing.T) {
	api := &tokenAPI{
		valid:         "T2",
		refreshStatus: http.StatusOK,
		refreshBody:   `{"access":"T2"}`,
		refreshGate:   make(chan struct{}),
	}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	leadDone := make(chan error, 1)
	go func() {
		_, err := a.Do(context.Background(), itemsRequest())
		leadDone <- err
	}()
	require.Eventually(t, func() bool { return api.refreshCalls.Load() == 1 }, 3*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	waiterDone := make(chan error, 1)
	go func() {
		_, err := a.Do(ctx, itemsRequest())
		waiterDone <- err
	}()
	require.Eventually(t, func() bool { return testutil.ToFloat64(m.QueuedRequests) == 1 }, 3*time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-waiterDone, context.Canceled)

	close(api.refreshGate)
	require.NoError(t, <-leadDone)
	assert.Equal(t, "T2", sess.Token())
}

func TestDo_LogoutDuringRefreshWins(t *testing.T) {
	api := &tokenAPI{
		valid:         "T2",
		refreshStatus: http.StatusOK,
		refreshBody:   `{"access":"T2"}`,
		refreshGate:   make(chan struct{}),
	}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	done := make(chan error, 1)
	go func() {
		_, err := a.Do(context.Background(), itemsRequest())
		done <- err
	}()
	require.Eventually(t, func() bool { return api.refreshCalls.Load() == 1 }, 3*time.Second, 5*time.Millisecond)

	sess.Logout()
	close(api.refreshGate)

	assert.ErrorIs(t, <-done, ErrLoggedOut)
	assert.Empty(t, sess.Token())
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, apiPrefix+"token/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "ana", Password: "secret"}, creds)

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r-1", Path: "/", HttpOnly: true})
		_, _ = utils.WriteJSON(w, models.LoginResponse{Access: "T1", Username: "ana", Email: "ana@example.com"}, http.StatusOK)
	}))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)

	got, err := a.Login(context.Background(), models.Credentials{Username: "ana", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, "T1", sess.Token())
	assert.Equal(t, session.StateAuthenticated, sess.State())
	assert.Equal(t, []models.SessionCookie{{Name: "refresh_token", Value: "r-1"}}, a.SessionCookies())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
	}))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Username: "ana", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, session.StateAnonymous, sess.State())
	assert.Zero(t, testutil.ToFloat64(m.RefreshAttempts), "a failed login is not a refresh trigger")
}

func TestLogin_EmptyAccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.LoginResponse{Username: "ana"}, http.StatusOK)
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Username: "ana", Password: "x"})

	assert.ErrorIs(t, err, ErrEmptyAccessToken)
}

func TestLogout_ClearsSessionEvenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"logout/", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	err := a.Logout(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, sess.Token())
	assert.Equal(t, session.StateAnonymous, sess.State())
}

// ── Route guards ────────────────────────────────────────────────────────────

func TestEnsureSession_ValidTokenSkipsRefresh(t *testing.T) {
	api := &tokenAPI{refreshStatus: http.StatusOK}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate(signedToken(t, time.Hour))

	require.NoError(t, a.EnsureSession(context.Background()))
	assert.Zero(t, api.refreshCalls.Load())
}

func TestEnsureSession_ExpiredTokenRefreshes(t *testing.T) {
	fresh := signedToken(t, time.Hour)
	api := &tokenAPI{refreshStatus: http.StatusOK, refreshBody: `{"access":"` + fresh + `"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate(signedToken(t, -time.Minute))

	require.NoError(t, a.EnsureSession(context.Background()))
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, fresh, sess.Token())
	assert.True(t, a.IsSessionValid())
}

func TestEnsureSession_FailureRedirects(t *testing.T) {
	api := &tokenAPI{refreshStatus: http.StatusUnauthorized}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	var redirects atomic.Int32
	a.SetSessionExpiredHandler(func() { redirects.Add(1) })

	err := a.EnsureSession(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), redirects.Load())
	assert.Equal(t, session.StateAnonymous, sess.State())
}

func TestEnsureSessionSilent_NoRedirect(t *testing.T) {
	api := &tokenAPI{refreshStatus: http.StatusUnauthorized}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate(signedToken(t, -time.Minute))
	var redirects atomic.Int32
	a.SetSessionExpiredHandler(func() { redirects.Add(1) })

	assert.False(t, a.EnsureSessionSilent(context.Background()))
	assert.Zero(t, redirects.Load())
	assert.Empty(t, sess.Token())
}

func TestEnsureSessionSilent_Refreshes(t *testing.T) {
	api := &tokenAPI{refreshStatus: http.StatusOK, refreshBody: `{"access":"` + signedToken(t, time.Hour) + `"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	assert.True(t, a.EnsureSessionSilent(context.Background()))
}

// ── Session persistence ─────────────────────────────────────────────────────

func TestRestoreSession_SendsCookieToRefresh(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("refresh_token"); err == nil {
			gotCookie = c.Value
		}
		_, _ = utils.WriteJSON(w, models.RefreshResponse{Access: "T2"}, http.StatusOK)
	}))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	a.RestoreSession("T1", []models.SessionCookie{{Name: "refresh_token", Value: "persisted"}})

	assert.Equal(t, "T1", sess.Token())
	assert.Equal(t, []models.SessionCookie{{Name: "refresh_token", Value: "persisted"}}, a.SessionCookies())

	require.NoError(t, a.EnsureSession(context.Background()))
	assert.Equal(t, "persisted", gotCookie)
}

// ── Resources ───────────────────────────────────────────────────────────────

func TestListProducts_SendsSKUFilter(t *testing.T) {
	want := []models.Product{{ID: 1, SKU: "750100", Description: "Toner"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"productos/productos/", r.URL.Path)
		assert.Equal(t, "750100", r.URL.Query().Get("sku"))
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	got, err := a.ListProducts(context.Background(), models.ProductFilter{SKU: "750100"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].SKU, got[0].SKU)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiPrefix+"productos/productos/42/", r.URL.Path)
		utils.WriteDetail(w, http.StatusNotFound, "No encontrado.")
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.GetProduct(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListClients_UnknownFieldIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"ACME","unexpected":true}]`))
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.ListClients(context.Background())

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.Equal(t, "clients", decodeErr.Resource)
}

func TestListMovements_WrongShapeIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.ListMovements(context.Background())

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestUpdateSystemVariable_PatchesValueOnly(t *testing.T) {
	value := "16"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, apiPrefix+"sistema/variables/3/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"valor": "16"}, body)

		_, _ = utils.WriteJSON(w, models.SystemVariable{ID: 3, Key: "IVA", Value: &value}, http.StatusOK)
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	got, err := a.UpdateSystemVariable(context.Background(), 3, models.SystemVariableUpdate{Value: &value})

	require.NoError(t, err)
	assert.Equal(t, "IVA", got.Key)
	assert.Equal(t, "16", *got.Value)
}

func TestDeactivateEquipment_PatchesActiveFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, apiPrefix+"productos/equipos/7/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"activo": false}, body)

		// the real backend answers with the equipment, which has no activo field
		_, _ = w.Write([]byte(`{"id":7,"nombre":"LaserJet M404","descripcion":null,"marca":{"id":1,"nombre":"HP","descripcion":null}}`))
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	assert.NoError(t, a.DeactivateEquipment(context.Background(), 7))
}

func TestUpdateBrand_PatchesName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, apiPrefix+"productos/marcas/2/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"nombre": "Brother"}, body)

		_, _ = utils.WriteJSON(w, models.Brand{ID: 2, Name: "Brother"}, http.StatusOK)
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	got, err := a.UpdateBrand(context.Background(), 2, models.BrandUpdate{Name: "Brother"})

	require.NoError(t, err)
	assert.Equal(t, models.Brand{ID: 2, Name: "Brother"}, got)
}

func TestUpdateBrand_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"detail": "No encontrado."}, http.StatusNotFound)
	}))
	defer srv.Close()

	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.UpdateBrand(context.Background(), 9, models.BrandUpdate{Name: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
}

// Resource calls ride the same 401 recovery as Do.
func TestResourceCall_RecoversFromUnauthorized(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(apiPrefix+"token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		_, _ = utils.WriteJSON(w, models.RefreshResponse{Access: "T2"}, http.StatusOK)
	})
	mux.HandleFunc(apiPrefix+"dashboard/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer T2" {
			utils.WriteDetail(w, http.StatusUnauthorized, "expired")
			return
		}
		_, _ = utils.WriteJSON(w, models.Dashboard{Stats: models.DashboardStats{Products: 12}}, http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate("T1")

	got, err := a.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Stats.Products)
	assert.Equal(t, int32(1), refreshes.Load())
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8000/api/v1/", want: "http://localhost:8000/api/v1"},
		{in: "localhost:8000/api/v1", want: "http://localhost:8000/api/v1"},
		{in: "  https://stock.example.com  ", want: "https://stock.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStrict_TrailingData(t *testing.T) {
	var v map[string]int
	err := decodeStrict("thing", []byte(`{"a":1} {"b":2}`), &v)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "thing", decodeErr.Resource)
}

func TestRefresh_ForcesNewToken(t *testing.T) {
	fresh := signedToken(t, 2*time.Hour)
	api := &tokenAPI{refreshStatus: http.StatusOK, refreshBody: `{"access":"` + fresh + `"}`}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, _ := newTestAdapter(t, srv.URL)
	sess.Authenticate(signedToken(t, time.Hour))

	require.NoError(t, a.Refresh(context.Background()))
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, fresh, sess.Token())
}

func TestRefresh_FailureRedirectsOnce(t *testing.T) {
	api := &tokenAPI{refreshStatus: http.StatusUnauthorized}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	a, sess, m := newTestAdapter(t, srv.URL)
	sess.Authenticate(signedToken(t, time.Hour))
	var redirects atomic.Int32
	a.SetSessionExpiredHandler(func() { redirects.Add(1) })

	err := a.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), api.refreshCalls.Load())
	assert.Equal(t, int32(1), redirects.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshFailures))
	assert.Equal(t, session.StateAnonymous, sess.State())
}
