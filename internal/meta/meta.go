// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package meta derives SEO metadata and display strings from a content
// record and the site configuration. Every function here is pure: identical
// input produces identical output, and nothing is read from globals.
package meta

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pressmark/internal/config"
	"pressmark/internal/models"
)

// OpenGraph holds the og:* properties emitted into a page head.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	ImageAlt    string
	Type        string
	SiteName    string
	Locale      string
}

// TwitterCard holds the twitter:* properties emitted into a page head.
type TwitterCard struct {
	Card        string
	Site        string
	Title       string
	Description string
	Image       string
}

// CanonicalFor builds the single authoritative URL for a slug of the given
// type: {base}/{typePath}/{slug}, no trailing slash, no query string.
func CanonicalFor(site config.Site, t models.ContentType, slug string) string {
	base := strings.TrimRight(site.BaseURL, "/")
	return base + "/" + site.TypePath(t) + "/" + slug
}

// CanonicalURL returns the canonical URL for a record. It is always
// reconstructible from the record's type and slug alone.
func CanonicalURL(site config.Site, rec *models.ContentRecord) string {
	return CanonicalFor(site, rec.Type, rec.Slug)
}

// TypeURL returns the absolute URL of a content type's listing page.
func TypeURL(site config.Site, t models.ContentType) string {
	return strings.TrimRight(site.BaseURL, "/") + "/" + site.TypePath(t)
}

// OpenGraphFor builds the Open Graph object for a record.
func OpenGraphFor(site config.Site, rec *models.ContentRecord) OpenGraph {
	return OpenGraph{
		Title:       rec.Title,
		Description: rec.Summary(),
		URL:         CanonicalURL(site, rec),
		Image:       OGImage(site, rec),
		ImageAlt:    ogImageAlt(rec),
		Type:        "article",
		SiteName:    site.Name,
		Locale:      site.Locale,
	}
}

// TwitterCardFor builds the Twitter card object for a record.
func TwitterCardFor(site config.Site, rec *models.ContentRecord) TwitterCard {
	return TwitterCard{
		Card:        "summary_large_image",
		Site:        site.TwitterHandle,
		Title:       rec.Title,
		Description: rec.Summary(),
		Image:       OGImage(site, rec),
	}
}

// OGImage selects the social-sharing image for a record. Priority, first
// non-empty wins: explicit ogImage, explicit coverImage, then a deterministic
// per-slug pick from the configured fallback list (site default when the
// list is empty).
func OGImage(site config.Site, rec *models.ContentRecord) string {
	if rec.OGImage != "" {
		return rec.OGImage
	}
	if rec.CoverImage != "" {
		return rec.CoverImage
	}
	if len(site.FallbackOGImages) > 0 {
		h := fnv.New32a()
		h.Write([]byte(rec.Slug))
		return site.FallbackOGImages[int(h.Sum32())%len(site.FallbackOGImages)]
	}
	return site.DefaultOGImage
}

// ogImageAlt returns the record's alt text, falling back to its title.
func ogImageAlt(rec *models.ContentRecord) string {
	if rec.AltText != "" {
		return rec.AltText
	}
	return rec.Title
}

// FormatDate renders a date using the named format variant from the site's
// locale/format table. Unknown variants fall back to "short".
func FormatDate(site config.Site, d time.Time, variant string) string {
	layout, ok := site.DateFormats[variant]
	if !ok || layout == "" {
		layout = site.DateFormats["short"]
	}
	if layout == "" {
		layout = "Jan 2, 2006"
	}
	return d.Format(layout)
}

// FormatReadingTime renders a reading time in minutes with the configured
// suffix. style is "long" ("5 min read") or "short" ("5 min"); unknown
// styles fall back to short.
func FormatReadingTime(site config.Site, minutes int, style string) string {
	suffix := site.ReadingTimeShort
	if style == "long" {
		suffix = site.ReadingTimeLong
	}
	if suffix == "" {
		suffix = "min"
	}
	return fmt.Sprintf("%d %s", minutes, suffix)
}

// titleCaser is shared; cases.Caser is not safe for concurrent use, so Label
// creates a fresh one per call from this tag instead.
var labelLang = language.English

// Label humanizes a slug or tag for display: hyphens become spaces and each
// word is title-cased. "launch-week" → "Launch Week"
func Label(s string) string {
	return cases.Title(labelLang).String(strings.ReplaceAll(s, "-", " "))
}
