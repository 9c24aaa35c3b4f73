package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	CatalogService   ClientCatalogService
	InventoryService ClientInventoryService
	MovementService  ClientMovementService
	SessionJob       ClientSessionJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, storages.SessionRepository, logger)

	return &ClientServices{
		AuthService:      authSvc,
		CatalogService:   NewClientCatalogService(serverAdapter, logger),
		InventoryService: NewClientInventoryService(serverAdapter, logger),
		MovementService:  NewClientMovementService(serverAdapter, logger),
		SessionJob:       NewClientSessionJob(serverAdapter, authSvc, logger),
	}
}
