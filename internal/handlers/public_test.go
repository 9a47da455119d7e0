package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pressmark/internal/config"
	"pressmark/internal/library"
	"pressmark/internal/models"
	"pressmark/internal/render"
)

func newTestPublic(t *testing.T) *Public {
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
				"short":    "Jan 2, 2006",
				"featured": "Monday, January 2, 2006",
				"recent":   "Jan 2",
			},
			ReadingTimeLong:  "min read",
			ReadingTimeShort: "min",
			DefaultOGImage:   "/static/og/default.png",
		},
	}

	dir := filepath.Join(cfg.ContentDir, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for i, slug := range []string{"first-post", "second-post"} {
		body := fmt.Sprintf(`---
title: Title %s
date: "2026-06-%02d"
tags: [launch]
canonical: https://example.com/blog/%s
readingTime: 3
language: en
description: Description of %s.
---

Body of %s.
`, slug, 10+i, slug, slug, slug)
		if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", slug, err)
		}
	}

	lib, err := library.New(cfg)
	if err != nil {
		t.Fatalf("library.New: %v", err)
	}
	renderer, err := render.New(cfg.Site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return NewPublic(cfg.Site, lib, renderer, nil, cfg.RelatedCount)
}

// TestTypeFromPath maps URL segments back to content types; the directory
// name "posts" is not a public path.
func TestTypeFromPath(t *testing.T) {
	p := newTestPublic(t)

	tests := []struct {
		segment string
		want    models.ContentType
		ok      bool
	}{
		{"blog", models.TypePost, true},
		{"guides", models.TypeGuide, true},
		{"news", models.TypeNews, true},
		{"posts", "", false},
		{"admin", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := p.typeFromPath(tt.segment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("typeFromPath(%q) = (%q, %v), want (%q, %v)", tt.segment, got, ok, tt.want, tt.ok)
		}
	}
}

// TestHomeData: homepage carries the newest records and the site's base URL
// as its canonical.
func TestHomeData(t *testing.T) {
	p := newTestPublic(t)

	data := p.HomeData()
	if data.Canonical != "https://example.com" {
		t.Errorf("Canonical = %q", data.Canonical)
	}
	recent, ok := data.Data["recent"].([]*models.ContentRecord)
	if !ok || len(recent) != 2 {
		t.Fatalf("recent = %v", data.Data["recent"])
	}
	if recent[0].Slug != "second-post" {
		t.Errorf("recent[0] = %q, want the newest record", recent[0].Slug)
	}
}

// TestListData: heading is humanized and the canonical points at the
// listing page.
func TestListData(t *testing.T) {
	p := newTestPublic(t)

	data := p.ListData(models.TypePost)
	if data.Title != "Posts" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.Canonical != "https://example.com/blog" {
		t.Errorf("Canonical = %q", data.Canonical)
	}
	records, ok := data.Data["records"].([]*models.ContentRecord)
	if !ok || len(records) != 2 {
		t.Fatalf("records = %v", data.Data["records"])
	}
}

// TestRecordData: the article page carries its stored canonical and the SEO
// head objects, and the related selection excludes the record itself.
func TestRecordData(t *testing.T) {
	p := newTestPublic(t)
	rec := p.library.GetBySlug(models.TypePost, "first-post")
	if rec == nil {
		t.Fatal("fixture record missing")
	}

	data := p.RecordData(rec)
	if data.Canonical != "https://example.com/blog/first-post" {
		t.Errorf("Canonical = %q", data.Canonical)
	}
	if data.OG == nil || data.OG.URL != data.Canonical {
		t.Errorf("OG = %+v", data.OG)
	}
	if data.Twitter == nil || data.Twitter.Card != "summary_large_image" {
		t.Errorf("Twitter = %+v", data.Twitter)
	}

	rel, ok := data.Data["related"].([]*models.ContentRecord)
	if !ok || len(rel) != 1 || rel[0].Slug != "second-post" {
		t.Errorf("related = %v", data.Data["related"])
	}
}

// TestNotFoundRendersLayout: the 404 handler answers with the site layout
// and a 404 status.
func TestNotFoundRendersLayout(t *testing.T) {
	p := newTestPublic(t)

	rr := httptest.NewRecorder()
	p.NotFound(rr, httptest.NewRequest(http.MethodGet, "/whatever", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Pressmark") {
		t.Error("404 page not rendered in the site layout")
	}
}
