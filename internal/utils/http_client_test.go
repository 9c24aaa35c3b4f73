package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client, err := NewHTTPClient("http://localhost:8000/api/v1/", 3*time.Second)

	require.NoError(t, err)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.NotNil(t, client.GetClient().Jar)
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1, err := NewHTTPClient("http://a", 0)
	require.NoError(t, err)
	client2, err := NewHTTPClient("http://a", 0)
	require.NoError(t, err)

	assert.NotSame(t, client1.Client, client2.Client)
	assert.NotSame(t, client1.GetClient().Jar, client2.GetClient().Jar)
}

func TestNewHTTPClient_KeepsCookiesBetweenRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r1", Path: "/"})
			return
		}
		c, err := r.Cookie("refresh_token")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(c.Value))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.R().Get("/set")
	require.NoError(t, err)

	resp, err := client.R().Get("/echo")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "r1", resp.String())
}
