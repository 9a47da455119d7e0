package router

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pressmark/internal/config"
	"pressmark/internal/handlers"
	"pressmark/internal/library"
	"pressmark/internal/render"
)

// newTestSite spins up the full stack — content tree on disk, library,
// renderer, handlers, router — and returns a test server for it.
func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ContentDir:        t.TempDir(),
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
				"full":     "January 2, 2006",
				"short":    "Jan 2, 2006",
				"featured": "Monday, January 2, 2006",
				"recent":   "Jan 2",
			},
			ReadingTimeLong:  "min read",
			ReadingTimeShort: "min",
			DefaultOGImage:   "/static/og/default.png",
		},
	}

	writeRecord(t, cfg.ContentDir, "posts", "launch-week", "2026-06-15", "blog")
	writeRecord(t, cfg.ContentDir, "posts", "retrospective", "2026-05-01", "blog")
	writeRecord(t, cfg.ContentDir, "guides", "getting-started", "2026-04-01", "guides")

	lib, err := library.New(cfg)
	if err != nil {
		t.Fatalf("library.New: %v", err)
	}
	renderer, err := render.New(cfg.Site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	pub := handlers.NewPublic(cfg.Site, lib, renderer, nil, cfg.RelatedCount)
	r, stop := New(pub)
	t.Cleanup(stop)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeRecord(t *testing.T, contentDir, typeDir, slug, date, urlPath string) {
	t.Helper()
	dir := filepath.Join(contentDir, typeDir)
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

func get(t *testing.T, srv *httptest.Server, path string) (int, string, http.Header) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body), resp.Header
}

func TestHomePage(t *testing.T) {
	srv := newTestSite(t)

	status, body, headers := get(t, srv, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if ct := headers.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	// Newest records across types show up on the homepage.
	for _, want := range []string{"Title launch-week", "Title getting-started"} {
		if !strings.Contains(body, want) {
			t.Errorf("homepage missing %q", want)
		}
	}
	if headers.Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
	if headers.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
}

func TestListPage(t *testing.T) {
	srv := newTestSite(t)

	status, body, _ := get(t, srv, "/blog")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Title launch-week") || !strings.Contains(body, "Title retrospective") {
		t.Error("listing missing records")
	}
	if strings.Contains(body, "Title getting-started") {
		t.Error("listing leaked a record from another type")
	}
}

func TestRecordPage(t *testing.T) {
	srv := newTestSite(t)

	status, body, _ := get(t, srv, "/blog/launch-week")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Body of launch-week") {
		t.Error("article body missing")
	}
	if !strings.Contains(body, `rel="canonical" href="https://example.com/blog/launch-week"`) {
		t.Error("canonical link missing")
	}
	// Related widget fills from the same collection.
	if !strings.Contains(body, "Title retrospective") {
		t.Error("related widget missing the sibling record")
	}
}

// TestNotFound: unknown slugs and unknown sections render the 404 page in
// the site layout — a routine response, the server keeps serving.
func TestNotFound(t *testing.T) {
	srv := newTestSite(t)

	for _, path := range []string{"/blog/nonexistent-slug", "/nonsense", "/nonsense/deep"} {
		status, body, _ := get(t, srv, path)
		if status != http.StatusNotFound {
			t.Errorf("GET %s: status = %d, want 404", path, status)
		}
		if !strings.Contains(body, "Pressmark") {
			t.Errorf("GET %s: 404 not rendered in the site layout", path)
		}
	}

	// The site is still healthy afterwards.
	if status, _, _ := get(t, srv, "/"); status != http.StatusOK {
		t.Errorf("homepage after misses: status = %d", status)
	}
}

func TestFeed(t *testing.T) {
	srv := newTestSite(t)

	status, body, headers := get(t, srv, "/feed.xml")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if ct := headers.Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(body, "<rss") {
		t.Error("feed missing rss element")
	}
	if !strings.Contains(body, "https://example.com/blog/launch-week") {
		t.Error("feed missing the post's canonical link")
	}
	if strings.Contains(body, "getting-started") {
		t.Error("feed should carry posts only")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestSite(t)

	status, body, headers := get(t, srv, "/health")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if headers.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", headers.Get("Content-Type"))
	}
	if body != `{"status":"ok"}` {
		t.Errorf("body = %q", body)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestSite(t)

	status, _, _ := get(t, srv, "/static/site.css")
	if status != http.StatusOK {
		t.Errorf("stylesheet: status = %d", status)
	}
}
