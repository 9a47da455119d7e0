// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package related selects the records shown in the "related content" widget
// next to an article.
package related

import "pressmark/internal/models"

// DefaultCount is the widget size used across the site.
const DefaultCount = 3

// Select picks up to n records related to source from all, which must be the
// source's own collection in its date-descending order. Two tiers:
//
//  1. records sharing at least one tag with source (case-sensitive exact
//     match), in collection order;
//  2. if fewer than n, the remaining records by date descending.
//
// The source itself is excluded by slug, the result contains no duplicates,
// and it is shorter than n only when the pool itself is smaller. No
// placeholders are ever padded in.
func Select(source *models.ContentRecord, all []*models.ContentRecord, n int) []*models.ContentRecord {
	if n <= 0 {
		return nil
	}

	picked := make([]*models.ContentRecord, 0, n)
	seen := make(map[string]bool, n)

	// Tag-match tier. The collection is already date descending, so no
	// further ranking is applied beyond "shares a tag".
	for _, rec := range all {
		if len(picked) == n {
			return picked
		}
		if rec.Slug == source.Slug || !rec.SharesTag(source) {
			continue
		}
		picked = append(picked, rec)
		seen[rec.Slug] = true
	}

	// Fill tier: newest first among whatever remains.
	for _, rec := range all {
		if len(picked) == n {
			break
		}
		if rec.Slug == source.Slug || seen[rec.Slug] {
			continue
		}
		picked = append(picked, rec)
		seen[rec.Slug] = true
	}

	return picked
}
