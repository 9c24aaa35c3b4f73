package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mockapi"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(backend mockapi.Backend, reg *prometheus.Registry, cfg *config.MockAPIConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(backend, reg, cfg.Auth.RefreshDuration, buildInfo, logger),
	}, nil
}
