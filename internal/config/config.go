// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration. Values come from an
// optional config.yaml file with PRESSMARK_* environment variable overrides,
// decoded into a typed Config struct used across the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pressmark/internal/models"
)

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"` // "development", "production", "testing"

	// Content pipeline
	ContentDir        string `mapstructure:"contentDir"`
	OutputDir         string `mapstructure:"outputDir"`         // static export target
	FutureHorizonDays int    `mapstructure:"futureHorizonDays"` // records dated further out are hidden
	RelatedCount      int    `mapstructure:"relatedCount"`      // size of the related-content widget

	// Valkey (Redis-compatible page cache); optional — empty host disables it.
	ValkeyHost     string `mapstructure:"valkeyHost"`
	ValkeyPort     string `mapstructure:"valkeyPort"`
	ValkeyPassword string `mapstructure:"valkeyPassword"`

	// Site-wide presentation settings, passed explicitly into the metadata
	// formatters. Read-only after Load; never mutated at runtime.
	Site Site `mapstructure:"site"`
}

// Site holds the site-wide values the canonical/metadata formatters consume.
type Site struct {
	Name    string `mapstructure:"name"`
	BaseURL string `mapstructure:"baseUrl"`
	Locale  string `mapstructure:"locale"`

	// TypePaths maps a content type to its URL path segment.
	TypePaths map[string]string `mapstructure:"typePaths"`

	// DateFormats maps a named variant (full|short|featured|recent) to a Go
	// time layout. Unknown variants resolve to "short".
	DateFormats map[string]string `mapstructure:"dateFormats"`

	// Reading-time suffixes for the long and short display variants.
	ReadingTimeLong  string `mapstructure:"readingTimeLong"`
	ReadingTimeShort string `mapstructure:"readingTimeShort"`

	// Open Graph image fallbacks: a record without ogImage/coverImage gets a
	// deterministic per-slug pick from FallbackOGImages, or DefaultOGImage
	// when the list is empty.
	DefaultOGImage   string   `mapstructure:"defaultOgImage"`
	FallbackOGImages []string `mapstructure:"fallbackOgImages"`

	TwitterHandle string `mapstructure:"twitterHandle"`
}

// Load reads configuration from config.yaml (if present) and the environment,
// applying development defaults. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PRESSMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine — defaults plus env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Site.BaseURL == "" {
		return nil, fmt.Errorf("site.baseUrl must not be empty")
	}
	if cfg.Env == "production" && strings.Contains(cfg.Site.BaseURL, "localhost") {
		return nil, fmt.Errorf("site.baseUrl must be set to the public URL in production")
	}
	if cfg.FutureHorizonDays <= 0 {
		return nil, fmt.Errorf("futureHorizonDays must be positive")
	}
	if cfg.RelatedCount <= 0 {
		return nil, fmt.Errorf("relatedCount must be positive")
	}

	return cfg, nil
}

// setDefaults registers the development defaults for every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")

	v.SetDefault("contentDir", "content")
	v.SetDefault("outputDir", "public")
	v.SetDefault("futureHorizonDays", 90)
	v.SetDefault("relatedCount", 3)

	v.SetDefault("valkeyHost", "")
	v.SetDefault("valkeyPort", "6379")

	v.SetDefault("site.name", "Pressmark")
	v.SetDefault("site.baseUrl", "http://localhost:8080")
	v.SetDefault("site.locale", "en_US")
	v.SetDefault("site.typePaths", map[string]string{
		"posts":  "blog",
		"guides": "guides",
		"news":   "news",
	})
	v.SetDefault("site.dateFormats", map[string]string{
		"full":     "January 2, 2006",
		"short":    "Jan 2, 2006",
		"featured": "Monday, January 2, 2006",
		"recent":   "Jan 2",
	})
	v.SetDefault("site.readingTimeLong", "min read")
	v.SetDefault("site.readingTimeShort", "min")
	v.SetDefault("site.defaultOgImage", "/static/og/default.png")
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ValkeyEnabled reports whether a page-cache backend is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// TypePath returns the URL path segment for a content type, falling back to
// the type name itself when no mapping is configured.
func (s Site) TypePath(t models.ContentType) string {
	if p, ok := s.TypePaths[string(t)]; ok && p != "" {
		return p
	}
	return string(t)
}
