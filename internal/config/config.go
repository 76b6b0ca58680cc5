// Package config carries the process-wide configuration. It is read once
// at startup and injected into the components that need it; nothing else
// in the server touches the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by every deployment mode.
type Config struct {
	// Token authenticates every scraper run. A missing token is a hard
	// startup failure: the mains validate and exit non-zero before
	// serving, rather than failing each tools/call later.
	Token string `env:"APIFY_TOKEN"`

	// BaseURL points at the Apify API; tests point it elsewhere.
	BaseURL string `env:"APIFY_BASE_URL" envDefault:"https://api.apify.com"`

	// Actor is the scraper actor executed per fetch.
	Actor string `env:"APIFY_ACTOR" envDefault:"dev_fusion~linkedin-profile-scraper"`

	// Timeout bounds one synchronous scraper run. Scraping takes tens of
	// seconds on a good day, so this is minutes, not seconds.
	Timeout time.Duration `env:"APIFY_TIMEOUT" envDefault:"4m"`

	// HTTPAddr is the listen address for the HTTP deployment mode.
	HTTPAddr string `env:"MCP_HTTP_ADDR" envDefault:":3333"`
}

// FromEnv parses configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate enforces credential presence. Every main calls this before
// entering its serve loop.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("APIFY_TOKEN is required")
	}
	return nil
}
