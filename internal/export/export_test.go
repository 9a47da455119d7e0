package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pressmark/internal/config"
	"pressmark/internal/handlers"
	"pressmark/internal/library"
	"pressmark/internal/render"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ContentDir:        t.TempDir(),
		OutputDir:         filepath.Join(t.TempDir(), "public"),
		FutureHorizonDays: 90,
		RelatedCount:      3,
		Site: config.Site{
			Name:    "Pressmark",
			BaseURL: "https://example.com",
			Locale:  "en_US",
			TypePaths: map[string]string{
				"posts":  "blog",
				"guides": "guides",
				"news":   "news",
			},
			DateFormats: map[string]string{
				"short":    "Jan 2, 2006",
				"featured": "Monday, January 2, 2006",
				"recent":   "Jan 2",
			},
			ReadingTimeLong:  "min read",
			ReadingTimeShort: "min",
			DefaultOGImage:   "/static/og/default.png",
		},
	}
}

func writeRecord(t *testing.T, cfg *config.Config, typeDir, slug, date, urlPath string) {
	t.Helper()
	dir := filepath.Join(cfg.ContentDir, typeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := fmt.Sprintf(`---
title: Title %s
date: "%s"
tags: [launch]
canonical: https://example.com/%s/%s
readingTime: 3
language: en
description: Description of %s.
---

Body of %s.
`, slug, date, urlPath, slug, slug, slug)
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", slug, err)
	}
}

// TestRunWritesFullSite exports a small site and checks every expected file
// lands on disk with rendered content.
func TestRunWritesFullSite(t *testing.T) {
	cfg := testConfig(t)
	writeRecord(t, cfg, "posts", "launch-week", "2026-06-15", "blog")
	writeRecord(t, cfg, "guides", "getting-started", "2026-04-01", "guides")

	lib, err := library.New(cfg)
	if err != nil {
		t.Fatalf("library.New: %v", err)
	}
	renderer, err := render.New(cfg.Site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	pub := handlers.NewPublic(cfg.Site, lib, renderer, nil, cfg.RelatedCount)

	if err := Run(cfg, pub, lib); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mustContain := func(rel, want string) {
		t.Helper()
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("%s missing %q", rel, want)
		}
	}

	mustContain("index.html", "Title launch-week")
	mustContain("feed.xml", "https://example.com/blog/launch-week")
	mustContain(filepath.Join("blog", "index.html"), "Title launch-week")
	mustContain(filepath.Join("blog", "launch-week", "index.html"), "Body of launch-week")
	mustContain(filepath.Join("guides", "getting-started", "index.html"), "Body of getting-started")
	mustContain(filepath.Join("static", "site.css"), "")

	// Empty types still get their listing page.
	mustContain(filepath.Join("news", "index.html"), "Nothing published here yet")
}

// TestRunRecreatesOutputDir: stale files from a previous export are gone
// after a fresh run.
func TestRunRecreatesOutputDir(t *testing.T) {
	cfg := testConfig(t)
	writeRecord(t, cfg, "posts", "only-post", "2026-06-15", "blog")

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := filepath.Join(cfg.OutputDir, "stale.html")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	lib, err := library.New(cfg)
	if err != nil {
		t.Fatalf("library.New: %v", err)
	}
	renderer, err := render.New(cfg.Site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	pub := handlers.NewPublic(cfg.Site, lib, renderer, nil, cfg.RelatedCount)

	if err := Run(cfg, pub, lib); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived the export")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); err != nil {
		t.Errorf("index.html missing: %v", err)
	}
}
