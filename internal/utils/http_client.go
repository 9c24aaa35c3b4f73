package utils

import (
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so the application can extend it without
// touching the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client rooted at baseURL. Each call gets an
// independent connection pool and its own cookie jar, which carries the
// backend session cookie used by the token refresh endpoint.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("http://localhost:8000/api/v1", 15*time.Second)
//	if err != nil {
//		return err
//	}
//	resp, err := client.R().Get("clientes/")
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	if client.GetClient().Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}, nil
}
