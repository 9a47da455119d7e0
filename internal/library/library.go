// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package library assembles validated content records into per-type
// collections and serves the lookup operations the page layer needs.
// Collections are rebuilt fresh on every Load; within one build they are
// memoized in memory. The filesystem is the only datastore — swapping it
// for something else only touches this package and internal/content.
package library

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"pressmark/internal/config"
	"pressmark/internal/content"
	"pressmark/internal/models"
)

// Library holds every visible content record, grouped by type, ordered by
// publish date descending. Safe for concurrent reads; Reload swaps the
// collections atomically under the write lock.
type Library struct {
	contentDir string
	site       config.Site
	horizon    time.Duration
	now        func() time.Time // injectable for tests

	mu     sync.RWMutex
	byType map[models.ContentType][]*models.ContentRecord
	bySlug map[models.ContentType]map[string]*models.ContentRecord
}

// New builds a Library from configuration and performs the initial load.
func New(cfg *config.Config) (*Library, error) {
	l := &Library{
		contentDir: cfg.ContentDir,
		site:       cfg.Site,
		horizon:    time.Duration(cfg.FutureHorizonDays) * 24 * time.Hour,
		now:        time.Now,
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload rebuilds every collection from disk. Invalid and malformed files
// are skipped with a warning; only a failing directory read is an error.
func (l *Library) Reload() error {
	byType := make(map[models.ContentType][]*models.ContentRecord, len(models.AllTypes))
	bySlug := make(map[models.ContentType]map[string]*models.ContentRecord, len(models.AllTypes))
	cutoff := l.now().Add(l.horizon)

	for _, t := range models.AllTypes {
		docs, err := content.LoadDir(filepath.Join(l.contentDir, string(t)))
		if err != nil {
			return fmt.Errorf("load %s: %w", t, err)
		}

		records := make([]*models.ContentRecord, 0, len(docs))
		slugs := make(map[string]*models.ContentRecord, len(docs))

		for _, doc := range docs {
			rec, err := content.Validate(doc, t, l.site)
			if err != nil {
				slog.Warn("skipping invalid content file", "file", doc.Path, "error", err)
				continue
			}
			if rec.Draft {
				continue
			}
			// Far-future records are hidden to keep the generated page set
			// bounded while drafts-in-progress carry placeholder dates.
			if rec.Date.After(cutoff) {
				continue
			}
			if prev, dup := slugs[rec.Slug]; dup {
				slog.Warn("skipping duplicate slug",
					"type", t, "slug", rec.Slug,
					"kept", prev.SourcePath, "skipped", rec.SourcePath,
				)
				continue
			}
			slugs[rec.Slug] = rec
			records = append(records, rec)
		}

		// Date descending; equal dates keep directory-listing order so the
		// ordering is deterministic across repeated loads.
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date)
		})

		byType[t] = records
		bySlug[t] = slugs
	}

	l.mu.Lock()
	l.byType = byType
	l.bySlug = bySlug
	l.mu.Unlock()

	return nil
}

// GetAllOfType returns every visible record of a type, date descending.
// Callers must not mutate the returned slice.
func (l *Library) GetAllOfType(t models.ContentType) []*models.ContentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byType[t]
}

// GetBySlug looks up a record by type and slug. A miss returns nil — it is
// an expected outcome the caller turns into a not-found page, never a fault.
func (l *Library) GetBySlug(t models.ContentType, slug string) *models.ContentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bySlug[t][slug]
}

// Recent returns up to n of the newest records across all types, by date
// descending. Used by the homepage.
func (l *Library) Recent(n int) []*models.ContentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var all []*models.ContentRecord
	for _, t := range models.AllTypes {
		all = append(all, l.byType[t]...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
