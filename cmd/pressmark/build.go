// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"github.com/spf13/cobra"

	"pressmark/internal/export"
	"pressmark/internal/handlers"
	"pressmark/internal/library"
	"pressmark/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Loads and validates the content library, renders every listing and
article page, and writes the result to the output directory together with
the RSS feed and static assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild() error {
	lib, err := library.New(cfg)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Site)
	if err != nil {
		return err
	}

	// No page cache for one-shot builds.
	public := handlers.NewPublic(cfg.Site, lib, renderer, nil, cfg.RelatedCount)

	return export.Run(cfg, public, lib)
}
