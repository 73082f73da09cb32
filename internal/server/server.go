// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/hyperdrive/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Config configures the HTTP server.
type Config struct {
	// Address is the listen address, e.g. ":1337".
	Address string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// OnListen is called once with the bound address before serving starts.
	OnListen func(addr net.Addr)
}

type server struct {
	httpServer *http.Server
	cfg        Config
	logger     *logger.Logger
}

// NewServer creates a Server for handler.
func NewServer(handler http.Handler, cfg Config, logger *logger.Logger) Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer: newHTTPServer(handler),
		cfg:        cfg,
		logger:     logger,
	}
}

// RunServer implements [Server].
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListen, s.cfg.Address, err)
	}

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("launching HTTP server")
	if s.cfg.OnListen != nil {
		s.cfg.OnListen(ln.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// Shutdown implements [Server].
func (s *server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	return nil
}
