// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/handler"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	handlers   *handler.Handlers
	logger     *logger.Logger
}

// NewServer creates a server for every handler that has an address in cfg.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{handlers: handlers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until the process receives SIGINT, SIGTERM or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops every started server and releases the handlers.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
	if s.handlers != nil {
		s.handlers.Close()
	}
}

// run serves until ctx is done or every server has returned on its own.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	servers := workers.New()
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		servers.Add(workers.WorkerFunc(s.httpServer.RunServer))
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		servers.Add(workers.WorkerFunc(s.gRPCServer.RunServer))
	}

	done := servers.Start()
	select {
	case <-ctx.Done():
	case <-done:
		s.logger.Warn().Msg("all servers stopped on their own")
	}
	s.Shutdown()
	<-done

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
