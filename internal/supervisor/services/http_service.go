// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService puts an HTTP server in the api layer of the tree.
//
//	server := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
}

// errHTTPServerClosed reports a server that stopped while its context was live.
var errHTTPServerClosed = errors.New("http server closed unexpectedly")

// Serve runs ListenAndServe until ctx ends. Shutdown gets its own deadline
// because ctx is already done by then.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	listenDone := make(chan error, 1)
	go func() { listenDone <- h.server.ListenAndServe() }()

	select {
	case err := <-listenDone:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return errHTTPServerClosed
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	if err := <-listenDone; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return ctx.Err()
}

func (h *HTTPServerService) String() string { return "http-server" }
