// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tomtom215/trendline/internal/api"
	"github.com/tomtom215/trendline/internal/config"
	"github.com/tomtom215/trendline/internal/dataset"
	"github.com/tomtom215/trendline/internal/logging"
	"github.com/tomtom215/trendline/internal/recommend"
	"github.com/tomtom215/trendline/internal/snapshot"
	"github.com/tomtom215/trendline/internal/supervisor"
	"github.com/tomtom215/trendline/internal/supervisor/services"
)

// application holds the wired components of a running server.
type application struct {
	tree    *supervisor.SupervisorTree
	server  *http.Server
	store   *recommend.Store
	reload  *services.ReloadService
	closers []io.Closer
}

// newApplication wires every component without starting anything.
func newApplication(cfg *config.Config) (*application, error) {
	app := &application{store: recommend.NewStore()}

	source, err := dataset.New(cfg.DatasetOptions())
	if err != nil {
		return nil, fmt.Errorf("create data source: %w", err)
	}
	if c, ok := source.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}
	guarded := dataset.NewBreakerSource(source, cfg.BreakerConfig())

	builder, err := snapshot.NewBuilder(guarded, cfg.ToRecommendConfig(), logging.WithComponent("recommend"))
	if err != nil {
		app.close()
		return nil, err
	}

	app.reload = services.NewReloadService(builder, app.store, services.ReloadServiceConfig{
		Interval:    cfg.Reload.Interval,
		MinInterval: cfg.Reload.MinInterval,
	}, logging.WithComponent("reload"))

	app.tree, err = supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		app.close()
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}
	app.tree.AddDataService(app.reload)

	if err := addReloadListener(cfg, app.tree, app.reload); err != nil {
		app.close()
		return nil, err
	}

	handler := api.NewHandler(app.store, app.reload)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)), cfg.Server.RequestTimeout)
	app.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	app.tree.AddAPIService(services.NewHTTPServerService(app.server, cfg.Server.ShutdownTimeout))

	return app, nil
}

func (a *application) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing data source")
		}
	}
}

// runServer serves until ctx is canceled.
func runServer(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("addr", cfg.Addr()).
		Str("data_source", cfg.Data.Source).
		Dur("reload_interval", cfg.Reload.Interval).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting Trendline")

	app, err := newApplication(cfg)
	if err != nil {
		return err
	}
	defer app.close()

	err = app.tree.Serve(ctx)

	if unstopped, reportErr := app.tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	logging.Info().Msg("Trendline stopped")
	return nil
}
