package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

func TestAuth_Rejects(t *testing.T) {
	h := newTestHandler(t)
	expired, err := utils.GenerateJWTToken(testAuth.TokenIssuer, 1, -time.Minute, testAuth.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantDetail string
	}{
		{name: "no header", wantDetail: ErrEmptyAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic YWRtaW46YWRtaW4=", wantDetail: utils.ErrInvalidAuthorizationHeader.Error()},
		{name: "garbage token", header: "Bearer nope"},
		{name: "expired token", header: utils.BearerHeader(expired.SignedString)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/productos/productos/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			detail := decodeDetail(t, rr)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detail)
			} else {
				assert.Contains(t, detail, "Given token not valid")
			}
		})
	}
}

func TestAuth_StoresUserID(t *testing.T) {
	h := newTestHandler(t)
	token, _ := login(t, h)

	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, authorized(httptest.NewRequest(http.MethodGet, "/", nil), token))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(1), gotID)
}
