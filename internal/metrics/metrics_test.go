package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthMetrics_RegistersOnRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAuthMetrics(reg)

	m.RefreshAttempts.Inc()
	m.ObserveRefresh(time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshAttempts))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "stock_keeper_token_refresh_attempts_total")
	assert.Contains(t, names, "stock_keeper_token_refresh_duration_seconds")
}

func TestNewAuthMetrics_NilRegistererIsUnregistered(t *testing.T) {
	first := NewAuthMetrics(nil)
	second := NewAuthMetrics(nil)

	first.QueuedRequests.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.QueuedRequests))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.QueuedRequests))
}

func TestNewBackendMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)

	m.RefreshesTotal.WithLabelValues("success").Inc()
	m.RefreshesTotal.WithLabelValues("success").Inc()
	m.Requests.WithLabelValues("GET", "200").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues("success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
}
