// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"pressmark/internal/cache"
	"pressmark/internal/config"
	"pressmark/internal/handlers"
	"pressmark/internal/library"
	"pressmark/internal/models"
	"pressmark/internal/render"
	"pressmark/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Loads the content library, then starts the HTTP server with graceful
shutdown. In development mode the content directory is watched and the
library reloads automatically when files change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *config.Config) error {
	// Load and validate all content up front; invalid files are skipped
	// with warnings, a missing content dir is an empty site, not a crash.
	lib, err := library.New(cfg)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Site)
	if err != nil {
		return err
	}

	// Full-page cache is optional — without Valkey every request renders.
	var pageCache *cache.PageCache
	if cfg.ValkeyEnabled() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		pageCache = cache.NewPageCache(client, cache.DefaultPageTTL)
	} else {
		slog.Info("valkey not configured — page cache disabled")
	}

	public := handlers.NewPublic(cfg.Site, lib, renderer, pageCache, cfg.RelatedCount)
	r, stopLimiter := router.New(public)
	defer stopLimiter()

	// Watch content in development so edits show up without a restart.
	if cfg.IsDev() {
		stopWatch, err := watchContent(cfg, lib, pageCache)
		if err != nil {
			slog.Warn("content watcher unavailable", "error", err)
		} else {
			defer stopWatch()
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// watchContent reloads the library (and clears the page cache) when any
// content file changes, debounced so editor save bursts reload once.
func watchContent(cfg *config.Config, lib *library.Library, pageCache *cache.PageCache) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the per-type subdirectories; missing ones are skipped, they
	// only appear when the first record of that type is authored.
	for _, t := range models.AllTypes {
		dir := filepath.Join(cfg.ContentDir, string(t))
		if err := watcher.Add(dir); err != nil {
			slog.Debug("not watching content dir", "dir", dir, "error", err)
		}
	}

	go func() {
		var reload *time.Timer
		const debounce = 500 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				slog.Debug("content change detected", "file", event.Name, "op", event.Op.String())
				if reload != nil {
					reload.Stop()
				}
				reload = time.AfterFunc(debounce, func() {
					if err := lib.Reload(); err != nil {
						slog.Error("content reload failed", "error", err)
						return
					}
					pageCache.InvalidateAll(context.Background())
					slog.Info("content reloaded")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("content watcher error", "error", err)
			}
		}
	}()

	return watcher.Close, nil
}
