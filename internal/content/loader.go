// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content reads Markdown-with-frontmatter files from disk, parses
// the metadata block into a typed struct, renders the body to HTML, and
// validates the result into a ContentRecord.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"pressmark/internal/markdown"
)

// Frontmatter is the typed metadata block at the head of a content file.
// Scalars and bracketed lists are both handled by the YAML decoder.
type Frontmatter struct {
	Title           string   `yaml:"title"`
	Date            string   `yaml:"date"`
	Tags            []string `yaml:"tags"`
	Draft           bool     `yaml:"draft"`
	Canonical       string   `yaml:"canonical"`
	ReadingTime     int      `yaml:"readingTime"`
	Language        string   `yaml:"language"`
	Description     string   `yaml:"description"`
	MetaDescription string   `yaml:"meta_desc"`
	CoverImage      string   `yaml:"coverImage"`
	OGImage         string   `yaml:"ogImage"`
	AltText         string   `yaml:"altText"`
	StructuredData  string   `yaml:"structuredData"`
	Slug            string   `yaml:"slug"` // optional override of the filename stem
}

// Document is one parsed content file, before validation.
type Document struct {
	Path string
	Meta Frontmatter
	Body string
	HTML string
}

// MalformedFileError reports a file that lacks the opening frontmatter
// delimiter or whose metadata block cannot be decoded.
type MalformedFileError struct {
	Path string
	Err  error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("%s: malformed content file: %v", e.Path, e.Err)
}

func (e *MalformedFileError) Unwrap() error { return e.Err }

// ParseFile reads and parses a single content file. A file that does not
// begin with the frontmatter delimiter yields a *MalformedFileError.
func ParseFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content file %s: %w", path, err)
	}

	var meta Frontmatter
	// MustParse requires the metadata block to be present; a missing opening
	// delimiter is a malformed file, not a plain Markdown document.
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Document{}, &MalformedFileError{Path: path, Err: err}
	}

	html, err := markdown.ToHTML(string(body))
	if err != nil {
		return Document{}, fmt.Errorf("render markdown for %s: %w", path, err)
	}

	return Document{
		Path: path,
		Meta: meta,
		Body: string(body),
		HTML: html,
	}, nil
}

// LoadDir parses every Markdown file in dir, in directory-listing order.
// A missing directory yields an empty result, not an error — content types
// with no entries yet are normal. Malformed files are skipped with a warning
// and never abort processing of their siblings.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		doc, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.Warn("skipping content file", "file", entry.Name(), "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
