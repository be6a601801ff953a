package service

import (
	"github.com/MKhiriev/fitiplus/internal/adapter"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/session"
)

// ClientServices groups the services the front ends call.
type ClientServices struct {
	AuthService    ClientAuthService
	ContentService ClientContentService
}

// NewClientServices wires the gateway and the content service over one
// session store.
func NewClientServices(
	sessionStore *session.Store,
	serverAdapter adapter.ServerAdapter,
	connectivity Connectivity,
	cfg config.ClientApp,
	log *logger.Logger,
) (*ClientServices, error) {
	authSvc, err := NewClientAuthService(sessionStore, serverAdapter, connectivity, cfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService:    authSvc,
		ContentService: NewClientContentService(sessionStore, serverAdapter, authSvc, connectivity, log),
	}, nil
}
