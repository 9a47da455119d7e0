// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the core domain types shared across the application.
package models

import (
	"html/template"
	"time"
)

// ContentType identifies one of the site's content sections. The value
// doubles as the name of the directory that holds the section's files.
type ContentType string

const (
	TypePost  ContentType = "posts"
	TypeGuide ContentType = "guides"
	TypeNews  ContentType = "news"
)

// AllTypes lists every content type the site serves, in a fixed order.
var AllTypes = []ContentType{TypePost, TypeGuide, TypeNews}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypePost, TypeGuide, TypeNews:
		return true
	}
	return false
}

// ContentRecord is one published content item (post, guide, or news article),
// fully parsed and validated. Records are immutable after load: removal means
// deleting the source file before the next reload.
type ContentRecord struct {
	Slug            string
	Type            ContentType
	Title           string
	Date            time.Time
	Tags            []string
	Draft           bool
	Canonical       string
	ReadingTime     int // minutes, always > 0
	Language        string
	Description     string
	MetaDescription string
	CoverImage      string
	OGImage         string
	AltText         string
	StructuredData  string // raw JSON-LD, emitted verbatim into the page head
	Body            string
	HTML            template.HTML
	SourcePath      string
}

// SharesTag reports whether r and other have at least one tag in common.
// Matching is case-sensitive exact string comparison.
func (r *ContentRecord) SharesTag(other *ContentRecord) bool {
	for _, a := range r.Tags {
		for _, b := range other.Tags {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Summary returns the record's description, falling back to the meta
// description when no description is set. Validation guarantees at least
// one of the two is non-empty.
func (r *ContentRecord) Summary() string {
	if r.Description != "" {
		return r.Description
	}
	return r.MetaDescription
}
