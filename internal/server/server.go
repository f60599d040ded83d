// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package server owns the process lifecycle of the inbound transport: it
// starts the HTTP server and shuts it down gracefully on SIGINT, SIGTERM or
// SIGQUIT.
package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Hariharan097/phishing-detection/internal/config"
	handlerhttp "github.com/Hariharan097/phishing-detection/internal/handler/http"
	"github.com/Hariharan097/phishing-detection/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// onShutdown is invoked once the stop signal arrives, before the HTTP
	// server drains. Used to stop background workers.
	onShutdown context.CancelFunc
}

// NewServer creates the transport server over the initialized handler.
// onShutdown is called when a stop signal arrives; pass the cancel func that
// stops the background workers.
func NewServer(handler *handlerhttp.Handler, cfg config.Server, onShutdown context.CancelFunc, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServerAddress
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
		onShutdown: onShutdown,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.onShutdown != nil {
		s.onShutdown()
	}

	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
