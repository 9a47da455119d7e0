// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed builds the site's RSS 2.0 feed from a list of content records.
package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"pressmark/internal/config"
	"pressmark/internal/meta"
	"pressmark/internal/models"
)

// rss is the RSS 2.0 document root.
type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language,omitempty"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Build renders an RSS 2.0 feed for the given records, which are expected in
// date-descending order. The canonical URL doubles as the item GUID.
func Build(site config.Site, description string, records []*models.ContentRecord) ([]byte, error) {
	ch := channel{
		Title:       site.Name,
		Link:        site.BaseURL,
		Description: description,
		Items:       make([]item, 0, len(records)),
	}
	if len(records) > 0 {
		ch.Language = records[0].Language
		ch.LastBuildDate = records[0].Date.Format(time.RFC1123Z)
	}

	for _, rec := range records {
		ch.Items = append(ch.Items, item{
			Title:       rec.Title,
			Link:        meta.CanonicalURL(site, rec),
			GUID:        meta.CanonicalURL(site, rec),
			Description: rec.Summary(),
			PubDate:     rec.Date.Format(time.RFC1123Z),
		})
	}

	out, err := xml.MarshalIndent(rss{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss feed: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
