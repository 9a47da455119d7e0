// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets for the public site:
// the stylesheet and the fallback Open Graph images referenced by the
// metadata formatter.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. Served at /static/ and
// copied verbatim into the output directory by the static exporter.
//
//go:embed all:static
var StaticFS embed.FS
