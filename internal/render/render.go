// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Templates are embedded in the binary; each page template is paired with
// the base layout, which emits the SEO head (canonical, Open Graph, Twitter
// card, JSON-LD) from PageData.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"pressmark/internal/config"
	"pressmark/internal/meta"
	"pressmark/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// pageNames lists every page template paired with the base layout.
var pageNames = []string{"home", "list", "record", "notfound"}

// PageData holds all data passed to site templates.
type PageData struct {
	Title          string            // Page title for the <title> tag
	Description    string            // Meta description
	Canonical      string            // Canonical URL; empty on the 404 page
	OG             *meta.OpenGraph   // Open Graph block; nil when not applicable
	Twitter        *meta.TwitterCard // Twitter card block; nil when not applicable
	StructuredData template.HTML     // Raw JSON-LD emitted verbatim, may be empty
	Site           config.Site
	Data           map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing the embedded site templates. The
// formatter helpers close over the site configuration so templates never
// touch globals.
func New(site config.Site) (*Renderer, error) {
	funcMap := template.FuncMap{
		// formatDate renders a record date with a named variant
		// (full|short|featured|recent).
		"formatDate": func(rec *models.ContentRecord, variant string) string {
			return meta.FormatDate(site, rec.Date, variant)
		},
		// readingTime renders the reading-time string, style "long" or "short".
		"readingTime": func(rec *models.ContentRecord, style string) string {
			return meta.FormatReadingTime(site, rec.ReadingTime, style)
		},
		// label humanizes a slug or tag for display.
		"label": meta.Label,
		// recordPath returns the site-relative path of a record.
		"recordPath": func(rec *models.ContentRecord) string {
			return "/" + site.TypePath(rec.Type) + "/" + rec.Slug
		},
		// typePath returns the site-relative path of a type's listing page.
		// Takes the type name as a string so templates can pass literals.
		"typePath": func(t string) string {
			return "/" + site.TypePath(models.ContentType(t))
		},
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render executes the named page template into w. Handlers render into a
// buffer first so the result can go to the page cache before the response.
func (rn *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}
