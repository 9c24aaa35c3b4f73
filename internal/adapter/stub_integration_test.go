package adapter

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	stubhttp "github.com/MKhiriev/go-stock-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mockapi"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var stubAuth = config.MockAPIAuth{
	TokenSignKey:    "stub-key",
	TokenIssuer:     "stock-api",
	TokenDuration:   time.Minute,
	RefreshDuration: time.Hour,
}

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	backend, err := mockapi.NewBackend(stubAuth, logger.Nop(), mockapi.WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, err)

	h := stubhttp.NewHandler(backend, nil, stubAuth.RefreshDuration, models.NewAppBuildInfo("", "", ""), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestStub_LoginAndBrowse(t *testing.T) {
	srv := newStubServer(t)
	a, _, _ := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	login, err := a.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", login.Username)
	assert.True(t, a.IsSessionValid())

	cookies := a.SessionCookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)

	products, err := a.ListProducts(ctx, models.ProductFilter{SKU: "7501000000042"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "EQP-001", products[0].InternalCode)

	movements, err := a.ListMovements(ctx)
	require.NoError(t, err)
	assert.Len(t, movements.Entries, 1)
	assert.Len(t, movements.Exits, 1)

	dashboard, err := a.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), dashboard.Stats.Products)

	_, err = a.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStub_ExpiredAccessRefreshesThroughCookie(t *testing.T) {
	srv := newStubServer(t)
	a, sess, m := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Login(ctx, models.Credentials{Username: "operador", Password: "operador123"})
	require.NoError(t, err)
	before := a.SessionCookies()

	expired, err := utils.GenerateJWTToken(stubAuth.TokenIssuer, 2, -time.Minute, stubAuth.TokenSignKey)
	require.NoError(t, err)
	sess.Authenticate(expired.SignedString)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = a.ListClients(ctx)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshAttempts))
	assert.NotEqual(t, expired.SignedString, a.Token())
	assert.NotEqual(t, before, a.SessionCookies(), "refresh cookie is rotated")
}

func TestStub_RevokedRefreshExpiresSession(t *testing.T) {
	srv := newStubServer(t)
	a, sess, _ := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	cookies := a.SessionCookies()

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, a.Token())

	expired, err := utils.GenerateJWTToken(stubAuth.TokenIssuer, 1, -time.Minute, stubAuth.TokenSignKey)
	require.NoError(t, err)
	a.RestoreSession(expired.SignedString, cookies)

	expiredCalls := 0
	a.SetSessionExpiredHandler(func() { expiredCalls++ })

	_, err = a.ListProducts(ctx, models.ProductFilter{})
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 1, expiredCalls)
	assert.Empty(t, sess.Token())
}

func TestStub_ForcedRefreshWithRevokedCookieExpiresOnce(t *testing.T) {
	srv := newStubServer(t)
	a, sess, m := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	cookies := a.SessionCookies()
	require.NoError(t, a.Logout(ctx))

	// still valid, but close enough to expiry for the session keeper
	nearExpiry, err := utils.GenerateJWTToken(stubAuth.TokenIssuer, 1, 10*time.Second, stubAuth.TokenSignKey)
	require.NoError(t, err)
	a.RestoreSession(nearExpiry.SignedString, cookies)

	expiredCalls := 0
	a.SetSessionExpiredHandler(func() { expiredCalls++ })

	err = a.Refresh(ctx)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 1, expiredCalls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshAttempts))
	assert.Empty(t, sess.Token())
}

func TestStub_WrongCredentials(t *testing.T) {
	srv := newStubServer(t)
	a, _, _ := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
