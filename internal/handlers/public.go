// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public site: the
// homepage, per-type listing pages, single article pages with the related
// widget, and the RSS feed. Every handler checks the full-page cache before
// rendering and stores its result on a miss.
package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pressmark/internal/cache"
	"pressmark/internal/config"
	"pressmark/internal/feed"
	"pressmark/internal/library"
	"pressmark/internal/meta"
	"pressmark/internal/models"
	"pressmark/internal/related"
	"pressmark/internal/render"
)

// homeRecentCount is how many records the homepage "Latest" section shows.
const homeRecentCount = 6

// Public groups the handlers for the public-facing site.
type Public struct {
	site         config.Site
	library      *library.Library
	renderer     *render.Renderer
	pageCache    *cache.PageCache // nil-safe; nil disables caching
	relatedCount int
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(site config.Site, lib *library.Library, renderer *render.Renderer, pageCache *cache.PageCache, relatedCount int) *Public {
	if relatedCount <= 0 {
		relatedCount = related.DefaultCount
	}
	return &Public{
		site:         site,
		library:      lib,
		renderer:     renderer,
		pageCache:    pageCache,
		relatedCount: relatedCount,
	}
}

// Home renders the homepage: site hero plus the newest records across types.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	p.renderCached(w, r, "home", cache.HomeKey(), http.StatusOK, p.HomeData())
}

// HomeData builds the template data for the homepage. Exported for the
// static exporter, which renders the same pages to disk.
func (p *Public) HomeData() *render.PageData {
	return &render.PageData{
		Title:       "Home",
		Description: p.site.Name + " — product news, guides, and engineering notes",
		Canonical:   p.site.BaseURL,
		Site:        p.site,
		Data: map[string]any{
			"recent": p.library.Recent(homeRecentCount),
		},
	}
}

// List renders a content type's listing page. The {type} URL parameter is
// the configured path segment (e.g. "blog"), not the directory name.
func (p *Public) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, ok := p.typeFromPath(chi.URLParam(r, "type"))
	if !ok {
		p.NotFound(w, r)
		return
	}

	if cached, ok := p.pageCache.Get(ctx, cache.ListKey(t)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	p.renderCached(w, r, "list", cache.ListKey(t), http.StatusOK, p.ListData(t))
}

// ListData builds the template data for a content type's listing page.
func (p *Public) ListData(t models.ContentType) *render.PageData {
	heading := meta.Label(string(t))
	return &render.PageData{
		Title:       heading,
		Description: heading + " from " + p.site.Name,
		Canonical:   meta.TypeURL(p.site, t),
		Site:        p.site,
		Data: map[string]any{
			"contentType": t,
			"heading":     heading,
			"records":     p.library.GetAllOfType(t),
		},
	}
}

// Record renders a single article page with its SEO head and the related
// widget. An unknown slug renders the not-found page — it is an expected
// outcome, not an error.
func (p *Public) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, ok := p.typeFromPath(chi.URLParam(r, "type"))
	if !ok {
		p.NotFound(w, r)
		return
	}
	slug := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.RecordKey(t, slug)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	rec := p.library.GetBySlug(t, slug)
	if rec == nil {
		p.NotFound(w, r)
		return
	}

	p.renderCached(w, r, "record", cache.RecordKey(t, slug), http.StatusOK, p.RecordData(rec))
}

// RecordData builds the template data for a single article page, including
// its SEO head objects and related-content selection.
func (p *Public) RecordData(rec *models.ContentRecord) *render.PageData {
	og := meta.OpenGraphFor(p.site, rec)
	tw := meta.TwitterCardFor(p.site, rec)
	return &render.PageData{
		Title:          rec.Title,
		Description:    rec.Summary(),
		Canonical:      rec.Canonical,
		OG:             &og,
		Twitter:        &tw,
		StructuredData: template.HTML(rec.StructuredData),
		Site:           p.site,
		Data: map[string]any{
			"record":  rec,
			"related": related.Select(rec, p.library.GetAllOfType(rec.Type), p.relatedCount),
		},
	}
}

// Feed serves the RSS 2.0 feed of blog posts.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cached, ok := p.pageCache.Get(ctx, cache.FeedKey()); ok {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write(cached)
		return
	}

	out, err := feed.Build(p.site, p.site.Name+" blog", p.library.GetAllOfType(models.TypePost))
	if err != nil {
		slog.Error("build rss feed failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.FeedKey(), out)
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(out)
}

// NotFound renders the 404 page. Not cached — misses are unbounded keyspace.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	data := &render.PageData{
		Title:       "Page not found",
		Description: "",
		Site:        p.site,
		Data:        map[string]any{},
	}

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, "notfound", data); err != nil {
		slog.Error("render notfound failed", "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeHTML(w, http.StatusNotFound, buf.Bytes())
}

// RenderPage executes a page template into w without touching the HTTP
// layer. The static exporter uses it to write pages to disk.
func (p *Public) RenderPage(w *bytes.Buffer, name string, data *render.PageData) error {
	return p.renderer.Render(w, name, data)
}

// renderCached renders a page into a buffer, stores it in the page cache,
// and writes it to the response.
func (p *Public) renderCached(w http.ResponseWriter, r *http.Request, name, key string, status int, data *render.PageData) {
	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, name, data); err != nil {
		slog.Error("render page failed", "template", name, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(r.Context(), key, buf.Bytes())
	writeHTML(w, status, buf.Bytes())
}

// typeFromPath maps a URL path segment back to its content type.
func (p *Public) typeFromPath(segment string) (models.ContentType, bool) {
	for _, t := range models.AllTypes {
		if p.site.TypePath(t) == segment {
			return t, true
		}
	}
	return "", false
}

// writeHTML writes an HTML response with the given status code.
func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
