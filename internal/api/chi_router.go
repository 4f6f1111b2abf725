// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/trendline/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a router. A non-positive requestTimeout disables the
// per-request deadline.
func NewRouter(handler *Handler, mw *ChiMiddleware, requestTimeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  mw,
		requestTimeout: requestTimeout,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondErrorBody(w, http.StatusNotFound, TypeNotFound, "Not Found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondErrorBody(w, http.StatusMethodNotAllowed, TypeMethodNotAllowed, "Method Not Allowed", nil)
	})

	// Health and metrics stay outside rate limiting for probes and scrapers
	r.Get("/health", router.handler.Health)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", router.registerAPIRoutes)
	r.Route("/api/v1", router.registerAPIRoutes)

	return r
}

func (router *Router) registerAPIRoutes(r chi.Router) {
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(APISecurityHeaders())
	if router.requestTimeout > 0 {
		r.Use(chimiddleware.Timeout(router.requestTimeout))
	}
	r.Use(chimiddleware.Compress(5))

	r.Post("/popular", router.handler.Popular)
	r.Post("/recommendations", router.handler.Recommendations)

	r.With(router.chiMiddleware.RateLimitCustom(RateLimitAdmin)).
		Post("/admin/reload", router.handler.AdminReload)
}
