package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults match the documented deployment configuration.
const (
	defaultAllowedDomains = "storage.googleapis.com,s3.amazonaws.com,mortgage-docs.confer.ai"
	defaultMaxPDFSize     = 10 * 1024 * 1024 // 10 MiB
	defaultTimeoutSecs    = 30
	defaultPort           = "8001"
	defaultRateLimit      = 120
	defaultOrigins        = "http://localhost:3000"
)

// Config holds all process configuration, read once at startup and passed
// by value into constructors. No package-level state.
type Config struct {
	Port            string
	AllowedDomains  []string
	MaxPDFSize      int64
	DownloadTimeout time.Duration
	APIKey          string // empty disables API key auth
	RateLimitPerMin int
	AllowedOrigins  string
	ExtractorMode   string // "stub" or "text"
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return d
}

// Load reads configuration from the environment.
func Load() Config {
	domains := strings.Split(getenv("ALLOWED_DOMAINS", defaultAllowedDomains), ",")
	for i := range domains {
		domains[i] = strings.TrimSpace(domains[i])
	}

	return Config{
		Port:            getenv("PORT", defaultPort),
		AllowedDomains:  domains,
		MaxPDFSize:      int64(getenvInt("MAX_PDF_SIZE", defaultMaxPDFSize)),
		DownloadTimeout: time.Duration(getenvInt("DOWNLOAD_TIMEOUT", defaultTimeoutSecs)) * time.Second,
		APIKey:          os.Getenv("API_KEY"),
		RateLimitPerMin: getenvInt("RATE_LIMIT_PER_MINUTE", defaultRateLimit),
		AllowedOrigins:  getenv("ALLOWED_ORIGINS", defaultOrigins),
		ExtractorMode:   getenv("EXTRACTOR_MODE", "stub"),
	}
}
