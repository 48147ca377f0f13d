// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/handler"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerHTTP, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}

	if err := s.run(ctx, l); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves on l until ctx is done, then shuts down and waits for the
// listener loop to return.
func (s *server) run(ctx context.Context, l net.Listener) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.serve(l)
	}()

	select {
	case err := <-served:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-served
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
