// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"html/template"
	"regexp"
	"time"

	"pressmark/internal/config"
	"pressmark/internal/meta"
	"pressmark/internal/models"
	"pressmark/internal/slug"
)

// FieldError reports a validation failure on a single frontmatter field.
// It carries the file identity so batch callers can log it meaningfully.
type FieldError struct {
	Path   string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Path, e.Field, e.Reason)
}

// dateShape enforces the YYYY-MM-DD wire format before calendar parsing.
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate turns a parsed document into a typed ContentRecord, or fails with
// a *FieldError naming the offending field. The slug is the filename stem
// unless the frontmatter carries an explicit slug.
func Validate(doc Document, t models.ContentType, site config.Site) (*models.ContentRecord, error) {
	fm := doc.Meta

	recSlug := fm.Slug
	if recSlug == "" {
		recSlug = slug.FromFilename(doc.Path)
	}
	if recSlug == "" {
		return nil, &FieldError{Path: doc.Path, Field: "slug", Reason: "cannot derive a slug from the filename"}
	}

	if fm.Title == "" {
		return nil, &FieldError{Path: doc.Path, Field: "title", Reason: "must be a non-empty string"}
	}

	if len(fm.Tags) == 0 {
		return nil, &FieldError{Path: doc.Path, Field: "tags", Reason: "must contain at least one tag"}
	}
	for i, tag := range fm.Tags {
		if tag == "" {
			return nil, &FieldError{Path: doc.Path, Field: "tags", Reason: fmt.Sprintf("tag %d is empty", i)}
		}
	}

	if !dateShape.MatchString(fm.Date) {
		return nil, &FieldError{Path: doc.Path, Field: "date", Reason: fmt.Sprintf("%q does not match YYYY-MM-DD", fm.Date)}
	}
	date, err := time.Parse("2006-01-02", fm.Date)
	if err != nil {
		return nil, &FieldError{Path: doc.Path, Field: "date", Reason: fmt.Sprintf("%q is not a valid calendar date", fm.Date)}
	}

	// The canonical must equal the derived URL exactly — a prefix match is
	// not enough, since a stale slug in the URL would pass it.
	expected := meta.CanonicalFor(site, t, recSlug)
	if fm.Canonical != expected {
		return nil, &FieldError{
			Path:   doc.Path,
			Field:  "canonical",
			Reason: fmt.Sprintf("got %q, want %q", fm.Canonical, expected),
		}
	}

	if fm.ReadingTime <= 0 {
		return nil, &FieldError{Path: doc.Path, Field: "readingTime", Reason: "must be a positive integer"}
	}

	if fm.Language == "" {
		return nil, &FieldError{Path: doc.Path, Field: "language", Reason: "must be a non-empty string"}
	}

	if fm.Description == "" && fm.MetaDescription == "" {
		return nil, &FieldError{Path: doc.Path, Field: "description", Reason: "one of description/meta_desc must be non-empty"}
	}

	if doc.HTML == "" {
		return nil, &FieldError{Path: doc.Path, Field: "body", Reason: "rendered body is empty"}
	}

	return &models.ContentRecord{
		Slug:            recSlug,
		Type:            t,
		Title:           fm.Title,
		Date:            date,
		Tags:            fm.Tags,
		Draft:           fm.Draft,
		Canonical:       fm.Canonical,
		ReadingTime:     fm.ReadingTime,
		Language:        fm.Language,
		Description:     fm.Description,
		MetaDescription: fm.MetaDescription,
		CoverImage:      fm.CoverImage,
		OGImage:         fm.OGImage,
		AltText:         fm.AltText,
		StructuredData:  fm.StructuredData,
		Body:            doc.Body,
		HTML:            template.HTML(doc.HTML),
		SourcePath:      doc.Path,
	}, nil
}
