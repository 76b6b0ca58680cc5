package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for the test while letting t.Setenv restore
// the original value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"APIFY_TOKEN", "APIFY_BASE_URL", "APIFY_ACTOR", "APIFY_TIMEOUT", "MCP_HTTP_ADDR"} {
		unsetenv(t, key)
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.BaseURL != "https://api.apify.com" {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL)
	}
	if cfg.Actor != "dev_fusion~linkedin-profile-scraper" {
		t.Fatalf("unexpected actor: %q", cfg.Actor)
	}
	if cfg.Timeout != 4*time.Minute {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.HTTPAddr != ":3333" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.Token != "" {
		t.Fatalf("token should default empty, got %q", cfg.Token)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APIFY_TOKEN", "tok-123")
	t.Setenv("APIFY_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("APIFY_ACTOR", "someone~custom-actor")
	t.Setenv("APIFY_TIMEOUT", "90s")
	t.Setenv("MCP_HTTP_ADDR", ":4444")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Token != "tok-123" || cfg.BaseURL != "http://127.0.0.1:9999" || cfg.Actor != "someone~custom-actor" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 90*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.HTTPAddr != ":4444" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		token string
		ok    bool
	}{
		{"tok", true},
		{"", false},
		{"   ", false},
	}

	for _, tc := range cases {
		err := Config{Token: tc.token}.Validate()
		if tc.ok && err != nil {
			t.Fatalf("token %q unexpected error: %v", tc.token, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("token %q expected error", tc.token)
		}
	}
}
