package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/adapter"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/internal/session"
	"github.com/MKhiriev/fitiplus/internal/store"
	"github.com/MKhiriev/fitiplus/internal/workers"
)

// App is the assembled client runtime shared by the TUI and fitictl.
type App struct {
	Services     *service.ClientServices
	Session      *session.Store
	Router       *guard.Router
	Connectivity *workers.ConnectivityProbe

	workers *workers.Workers
	kv      store.KeyValueStore
	logger  *logger.Logger
}

// NewApp opens storage, restores the persisted session and wires the
// gateway, the connectivity probe and the route guards. Background workers
// are not started; see [App.Start].
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create session storage: %w", err)
	}

	app, err := newApp(ctx, cfg, kv, log)
	if err != nil {
		return nil, errors.Join(err, kv.Close())
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, kv store.KeyValueStore, log *logger.Logger) (*App, error) {
	sessionStore := session.NewStore(kv, log)
	sessionStore.Load(ctx)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	probe := workers.NewConnectivityProbe(serverAdapter, cfg.Workers.ConnectivityInterval, log)

	services, err := service.NewClientServices(sessionStore, serverAdapter, probe, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		Services:     services,
		Session:      sessionStore,
		Router:       guard.NewRouter(services.AuthService, cfg.Routes, log),
		Connectivity: probe,
		workers:      workers.NewWorkers(probe),
		kv:           kv,
		logger:       log,
	}, nil
}

// Start launches the background workers. They run until Close or until ctx
// is cancelled.
func (a *App) Start(ctx context.Context) {
	a.workers.Start(ctx)
}

// Close stops the workers and closes storage.
func (a *App) Close() error {
	a.workers.Stop()
	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("close session storage: %w", err)
	}
	return nil
}
