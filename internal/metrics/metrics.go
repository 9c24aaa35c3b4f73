// Package metrics defines the Prometheus collectors of the stock-keeper
// client and of the stub backend.
//
// Collectors are registered on the given prometheus.Registerer. Passing nil
// creates unregistered collectors, which is what tests and one-shot CLI
// runs use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuthMetrics tracks the token refresh protocol of the authenticated client.
type AuthMetrics struct {
	RefreshAttempts  prometheus.Counter
	RefreshFailures  prometheus.Counter
	QueuedRequests   prometheus.Counter
	ReplayedRequests prometheus.Counter
	RefreshDuration  prometheus.Histogram
}

// NewAuthMetrics creates the auth client collectors on reg.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	factory := promauto.With(reg)

	return &AuthMetrics{
		RefreshAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "stock_keeper_token_refresh_attempts_total",
			Help: "Total number of token refresh calls issued",
		}),
		RefreshFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "stock_keeper_token_refresh_failures_total",
			Help: "Total number of token refresh calls that ended the session",
		}),
		QueuedRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "stock_keeper_requests_queued_total",
			Help: "Total number of requests parked behind an in-flight refresh",
		}),
		ReplayedRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "stock_keeper_requests_replayed_total",
			Help: "Total number of requests resent with a fresh token",
		}),
		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stock_keeper_token_refresh_duration_seconds",
			Help:    "Duration of token refresh calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveRefresh records the duration of a refresh call.
// Call with time.Now() at the start of the call.
func (m *AuthMetrics) ObserveRefresh(start time.Time) {
	m.RefreshDuration.Observe(time.Since(start).Seconds())
}

// BackendMetrics tracks the stub backend.
type BackendMetrics struct {
	Requests       *prometheus.CounterVec
	LoginsTotal    *prometheus.CounterVec
	RefreshesTotal *prometheus.CounterVec
}

// NewBackendMetrics creates the stub backend collectors on reg.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	factory := promauto.With(reg)

	return &BackendMetrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_api_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		}, []string{"method", "code"}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_api_logins_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"outcome"}),
		RefreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_api_token_refreshes_total",
			Help: "Total number of token refresh requests by outcome",
		}, []string{"outcome"}),
	}
}
