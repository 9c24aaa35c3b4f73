// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/session"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client     *utils.HTTPClient
	refreshURL *url.URL

	session   *session.Manager
	metrics   *metrics.AuthMetrics
	onExpired atomic.Pointer[func()]

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.APIURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// sess is the single owner of the access token. m may be nil.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, sess *session.Manager, m *metrics.AuthMetrics, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	refreshURL, err := url.Parse(baseURL + "/" + endpointRefresh)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh url: %w", err)
	}

	client, err := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	if m == nil {
		m = metrics.NewAuthMetrics(nil)
	}

	return &httpServerAdapter{
		client:     client,
		refreshURL: refreshURL,
		session:    sess,
		metrics:    m,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [ServerAdapter].
func (h *httpServerAdapter) Do(ctx context.Context, req *Request) (*resty.Response, error) {
	token := h.session.Token()

	resp, err := h.send(ctx, req, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusUnauthorized || req.retried {
		return resp, nil
	}
	req.retried = true

	return h.recoverUnauthorized(ctx, req, token)
}

func (h *httpServerAdapter) send(ctx context.Context, req *Request, token string) (*resty.Response, error) {
	r := h.client.R().SetContext(ctx)
	if token != "" {
		r.SetHeader("Authorization", utils.BearerHeader(token))
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	return resp, nil
}

// refreshOutcome is what a queued request receives when it is resumed.
type refreshOutcome struct {
	token string
	err   error
}

// recoverUnauthorized handles the first 401 of req, sent with usedToken.
func (h *httpServerAdapter) recoverUnauthorized(ctx context.Context, req *Request, usedToken string) (*resty.Response, error) {
	// Buffered: the resumption runs under the session lock and must not
	// block, even if this caller has already given up waiting.
	resumed := make(chan refreshOutcome, 1)
	ticket := h.session.BeginRefresh(usedToken, func(token string, err error) {
		resumed <- refreshOutcome{token: token, err: err}
	})

	switch ticket.Admission {
	case session.AdmitStale:
		h.metrics.ReplayedRequests.Inc()
		return h.send(ctx, req, ticket.Token)

	case session.AdmitQueued:
		h.metrics.QueuedRequests.Inc()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case outcome := <-resumed:
			if outcome.err != nil {
				return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, outcome.err)
			}
			h.metrics.ReplayedRequests.Inc()
			return h.send(ctx, req, outcome.token)
		}

	default:
		token, err := h.leadRefresh(ctx, ticket, true)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}
		h.metrics.ReplayedRequests.Inc()
		return h.send(ctx, req, token)
	}
}

// leadRefresh performs the one refresh call of ticket and reports the
// outcome to the session manager. With redirect set, a failed refresh runs
// the session expired handler.
func (h *httpServerAdapter) leadRefresh(ctx context.Context, ticket *session.Ticket, redirect bool) (string, error) {
	// Every queued request depends on this call, so the caller's
	// cancellation must not abort it. The client timeout still applies.
	token, refreshErr := h.callRefresh(context.WithoutCancel(ctx))

	if refreshErr == nil {
		if err := ticket.Complete(token); err != nil {
			return h.afterSuperseded()
		}
		return token, nil
	}

	h.metrics.RefreshFailures.Inc()
	if err := ticket.Fail(refreshErr); err != nil {
		return h.afterSuperseded()
	}

	if redirect {
		h.sessionExpired()
	}

	return "", fmt.Errorf("%w: %v", ErrSessionExpired, refreshErr)
}

// afterSuperseded resolves a refresh whose outcome arrived after a login or
// logout: resend with the token the user has now, if any.
func (h *httpServerAdapter) afterSuperseded() (string, error) {
	if token := h.session.Token(); token != "" {
		return token, nil
	}
	return "", ErrLoggedOut
}

// callRefresh posts to the refresh endpoint. The refresh proof travels as a
// cookie, no bearer token is attached.
func (h *httpServerAdapter) callRefresh(ctx context.Context) (string, error) {
	h.metrics.RefreshAttempts.Inc()
	start := time.Now()
	defer h.metrics.ObserveRefresh(start)

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(struct{}{}).
		Post(endpointRefresh)
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var refreshed models.RefreshResponse
	if err = json.Unmarshal(resp.Body(), &refreshed); err != nil {
		return "", &DecodeError{Resource: "token refresh", Err: err}
	}
	if refreshed.Access == "" {
		return "", ErrEmptyAccessToken
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.callRefresh").
		Dur("took", time.Since(start)).Msg("access token refreshed")
	return refreshed.Access, nil
}

// SetSessionExpiredHandler implements [AuthClient].
func (h *httpServerAdapter) SetSessionExpiredHandler(fn func()) {
	if fn == nil {
		h.onExpired.Store(nil)
		return
	}
	h.onExpired.Store(&fn)
}

func (h *httpServerAdapter) sessionExpired() {
	h.logger.Warn().Str("func", "*httpServerAdapter.sessionExpired").Msg("session expired, login required")
	if fn := h.onExpired.Load(); fn != nil {
		(*fn)()
	}
}
