package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

// NewServer wraps handler in an HTTP server listening on cfg.Address.
func NewServer(handler http.Handler, cfg config.StubAPI, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoAddress
	}
	if handler == nil {
		return nil, errNilHandler
	}
	logger.Info().Str("address", cfg.Address).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		address:    cfg.Address,
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.logger.Info().Str("address", s.address).Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-stopped
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-stopped:
		// listen failed; the error is already logged
	}
}
