package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8001" {
		t.Errorf("default port: got %q, want %q", cfg.Port, "8001")
	}
	if cfg.MaxPDFSize != 10*1024*1024 {
		t.Errorf("default max size: got %d, want %d", cfg.MaxPDFSize, 10*1024*1024)
	}
	if cfg.DownloadTimeout != 30*time.Second {
		t.Errorf("default timeout: got %v, want 30s", cfg.DownloadTimeout)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("default rate limit: got %d, want 120", cfg.RateLimitPerMin)
	}
	if cfg.ExtractorMode != "stub" {
		t.Errorf("default extractor mode: got %q, want %q", cfg.ExtractorMode, "stub")
	}
	if len(cfg.AllowedDomains) != 3 {
		t.Fatalf("default allowed domains: got %d entries, want 3", len(cfg.AllowedDomains))
	}
	if cfg.AllowedDomains[0] != "storage.googleapis.com" {
		t.Errorf("first allowed domain: got %q", cfg.AllowedDomains[0])
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ALLOWED_DOMAINS", "docs.example.com, cdn.example.com")
	t.Setenv("MAX_PDF_SIZE", "1048576")
	t.Setenv("DOWNLOAD_TIMEOUT", "5")
	t.Setenv("API_KEY", "secret")
	t.Setenv("EXTRACTOR_MODE", "text")

	cfg := Load()

	if len(cfg.AllowedDomains) != 2 || cfg.AllowedDomains[1] != "cdn.example.com" {
		t.Errorf("allowed domains not trimmed/split correctly: %v", cfg.AllowedDomains)
	}
	if cfg.MaxPDFSize != 1048576 {
		t.Errorf("max size override: got %d", cfg.MaxPDFSize)
	}
	if cfg.DownloadTimeout != 5*time.Second {
		t.Errorf("timeout override: got %v", cfg.DownloadTimeout)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
	if cfg.ExtractorMode != "text" {
		t.Errorf("extractor mode: got %q", cfg.ExtractorMode)
	}
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("MAX_PDF_SIZE", "not-a-number")
	t.Setenv("DOWNLOAD_TIMEOUT", "-3")

	cfg := Load()

	if cfg.MaxPDFSize != 10*1024*1024 {
		t.Errorf("bad MAX_PDF_SIZE should fall back to default, got %d", cfg.MaxPDFSize)
	}
	if cfg.DownloadTimeout != 30*time.Second {
		t.Errorf("negative DOWNLOAD_TIMEOUT should fall back to default, got %v", cfg.DownloadTimeout)
	}
}
