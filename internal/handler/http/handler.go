package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/mockapi"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type Handler struct {
	backend    mockapi.Backend
	metrics    *metrics.BackendMetrics
	gatherer   prometheus.Gatherer
	buildInfo  models.AppBuildInfo
	refreshTTL time.Duration
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the stub backend handler. Collectors are registered on
// reg and exposed on /metrics; a nil reg gets a private registry.
func NewHandler(backend mockapi.Backend, reg *prometheus.Registry, refreshTTL time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		backend:    backend,
		metrics:    metrics.NewBackendMetrics(reg),
		gatherer:   reg,
		buildInfo:  buildInfo,
		refreshTTL: refreshTTL,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
