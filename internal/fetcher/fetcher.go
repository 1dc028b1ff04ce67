// Package fetcher is the ingestion gateway: it retrieves untrusted
// external PDF documents under strict safety constraints before any
// bytes reach the extraction pipeline.
package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

const pdfMagic = "%PDF"

// Config is the gateway policy, passed in explicitly so gateways with
// different policies can coexist and be tested in isolation.
type Config struct {
	AllowedDomains []string      // exact host matches, no wildcards
	MaxPDFSize     int64         // bytes
	Timeout        time.Duration // hard per-fetch deadline
}

// Fetcher downloads PDF documents from allow-listed HTTPS origins.
// It never writes payloads to disk and never retries a failed fetch.
type Fetcher struct {
	cfg     Config
	allowed map[string]struct{}
	client  *http.Client
}

// New builds a Fetcher from an explicit policy. The HTTP client
// re-validates every redirect hop against the same scheme and
// allow-list rules, so a validated URL cannot bounce the request to a
// host the policy forbids.
func New(cfg Config) *Fetcher {
	if cfg.MaxPDFSize <= 0 {
		cfg.MaxPDFSize = 10 * 1024 * 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		if d = strings.TrimSpace(d); d != "" {
			allowed[d] = struct{}{}
		}
	}

	f := &Fetcher{cfg: cfg, allowed: allowed}
	f.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return f.checkHop(req.URL)
		},
	}
	return f
}

// Validate performs the static checks on a document reference. It is
// called before any network access and short-circuits on the first
// failure. Order: scheme, host allow-list, .pdf path suffix.
func (f *Fetcher) Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.NewSecurityError("invalid URL: %v", err)
	}
	if u.Scheme != "https" {
		return models.NewSecurityError("only HTTPS URLs allowed, got: %q", u.Scheme)
	}
	if _, ok := f.allowed[u.Host]; !ok {
		return models.NewSecurityError("domain not allowed: %s (allowed: %s)",
			u.Host, strings.Join(f.cfg.AllowedDomains, ", "))
	}
	if !strings.HasSuffix(strings.ToLower(u.Path), ".pdf") {
		return models.NewSecurityError("only PDF files allowed")
	}
	return nil
}

// checkHop applies the scheme and allow-list rules to a redirect
// target. The .pdf suffix rule is not re-applied: redirect targets
// routinely carry signed, extension-less paths.
func (f *Fetcher) checkHop(u *url.URL) error {
	if u.Scheme != "https" {
		return models.NewSecurityError("redirect to non-HTTPS URL: %s", u.Scheme)
	}
	if _, ok := f.allowed[u.Host]; !ok {
		return models.NewSecurityError("redirect to non-allow-listed host: %s", u.Host)
	}
	return nil
}

// Fetch validates the reference, downloads it within the configured
// deadline, enforces the size cap, and verifies the PDF magic marker.
// The payload is returned in memory only; a failed fetch returns no
// partial bytes.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.Validate(rawURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, models.NewTransportError("building request: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// A redirect-policy rejection surfaces through the client
		// error; keep its security classification intact.
		if ce := asCoded(err); ce != nil {
			return nil, ce
		}
		return nil, models.NewTransportError("download failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, models.NewTransportError("download failed: HTTP %d", resp.StatusCode)
	}
	if resp.ContentLength > f.cfg.MaxPDFSize {
		return nil, models.NewFormatError("PDF too large: %d bytes (max: %d)", resp.ContentLength, f.cfg.MaxPDFSize)
	}

	// Read one byte past the cap so oversize bodies are detected even
	// without a Content-Length header.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxPDFSize+1))
	if err != nil {
		return nil, models.NewTransportError("reading response: %v", err)
	}
	if int64(len(body)) > f.cfg.MaxPDFSize {
		return nil, models.NewFormatError("PDF too large: exceeds %d bytes", f.cfg.MaxPDFSize)
	}
	if len(body) < len(pdfMagic) || string(body[:len(pdfMagic)]) != pdfMagic {
		return nil, models.NewFormatError("file does not appear to be a valid PDF")
	}

	return body, nil
}

// asCoded digs a CodedError out of the url.Error wrapping that
// http.Client applies to CheckRedirect failures.
func asCoded(err error) *models.CodedError {
	var ce *models.CodedError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
