// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// public site server.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pressmark/internal/handlers"
	"pressmark/internal/middleware"
	"pressmark/web"
)

// New creates the configured Chi router with all middleware and routes.
// The returned stop function releases the rate limiter's cleanup goroutine.
func New(public *handlers.Public) (chi.Router, func()) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	limiter := middleware.NewRateLimiter(120, time.Minute)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(limiter.Middleware)

	// Health check for load balancers.
	r.Get("/health", healthHandler)

	// Embedded static assets (stylesheet, fallback OG images).
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from binary: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/feed.xml", public.Feed)
	r.Get("/{type}", public.List)
	r.Get("/{type}/{slug}", public.Record)

	// Anything else is a not-found page, rendered in the site layout.
	r.NotFound(public.NotFound)

	return r, limiter.Stop
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
