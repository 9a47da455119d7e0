// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the pressmark site. It exposes two
// commands: "serve" runs the HTTP server, "build" exports the site to
// static files.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pressmark/internal/config"
)

// cfg is loaded once before any command runs and is read-only afterwards.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pressmark",
	Short: "Markdown-backed marketing and blog site",
	Long: `pressmark loads Markdown-with-frontmatter content from disk, validates it,
and serves it as a marketing/blog website — live behind an HTTP server
("serve") or exported as static files ("build").`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Structured logger; debug level in development.
		level := slog.LevelInfo
		if os.Getenv("PRESSMARK_ENV") != "production" {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		slog.Info("configuration loaded",
			"env", cfg.Env,
			"content_dir", cfg.ContentDir,
			"base_url", cfg.Site.BaseURL,
		)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
