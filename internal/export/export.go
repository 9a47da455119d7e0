// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export writes the whole site to disk as static files: one
// index.html per permalink, the RSS feed, and the embedded static assets.
// The output directory can be served by any dumb file server or CDN.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"pressmark/internal/config"
	"pressmark/internal/feed"
	"pressmark/internal/handlers"
	"pressmark/internal/library"
	"pressmark/internal/models"
	"pressmark/internal/render"
	"pressmark/web"
)

// Run renders every page of the site into cfg.OutputDir. The directory is
// recreated from scratch on each run.
func Run(cfg *config.Config, pub *handlers.Public, lib *library.Library) error {
	out := cfg.OutputDir

	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean output dir %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", out, err)
	}

	if err := copyStatic(out); err != nil {
		return err
	}

	// Homepage.
	if err := writePage(pub, "home", pub.HomeData(), filepath.Join(out, "index.html")); err != nil {
		return err
	}

	// RSS feed.
	rss, err := feed.Build(cfg.Site, cfg.Site.Name+" blog", lib.GetAllOfType(models.TypePost))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "feed.xml"), rss, 0o644); err != nil {
		return fmt.Errorf("write feed.xml: %w", err)
	}

	// Listing and article pages, one directory per permalink.
	pages := 0
	for _, t := range models.AllTypes {
		typeDir := filepath.Join(out, cfg.Site.TypePath(t))
		if err := writePage(pub, "list", pub.ListData(t), filepath.Join(typeDir, "index.html")); err != nil {
			return err
		}
		for _, rec := range lib.GetAllOfType(t) {
			dst := filepath.Join(typeDir, rec.Slug, "index.html")
			if err := writePage(pub, "record", pub.RecordData(rec), dst); err != nil {
				return err
			}
			pages++
		}
	}

	slog.Info("static export complete", "dir", out, "articles", pages)
	return nil
}

// writePage renders one page template into the destination file, creating
// parent directories as needed.
func writePage(pub *handlers.Public, name string, data *render.PageData, dst string) error {
	var buf bytes.Buffer
	if err := pub.RenderPage(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", dst, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// copyStatic copies the embedded static assets into the output directory.
func copyStatic(out string) error {
	return fs.WalkDir(web.StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(out, path)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(web.StaticFS, path)
		if err != nil {
			return fmt.Errorf("read embedded asset %s: %w", path, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", dst, err)
		}
		return nil
	})
}
