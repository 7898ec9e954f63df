// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fetch retrieves external pages under strict safety limits:
// a hard timeout, a response size cap, and a private-network blocklist
// that prevents server-side request forgery against internal services.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Kind classifies fetch failures so callers can report them distinctly.
type Kind string

const (
	KindInvalidURL       Kind = "invalid_url"
	KindBlockedHost      Kind = "blocked_host"
	KindTimeout          Kind = "timeout"
	KindTooLarge         Kind = "too_large"
	KindNetworkError     Kind = "network_error"
	KindNonSuccessStatus Kind = "non_success_status"
)

// Error is a typed fetch failure. Every failure the fetcher can produce is
// an *Error; the pipeline downgrades all of them to an empty scrape rather
// than failing the job.
type Error struct {
	Kind   Kind
	Status int // set for KindNonSuccessStatus
	cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindNonSuccessStatus:
		return fmt.Sprintf("fetch: upstream returned status %d", e.Status)
	case e.cause != nil:
		return fmt.Sprintf("fetch: %s: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("fetch: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the failure kind from an error chain. Returns
// KindNetworkError for unclassified errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNetworkError
}

const (
	fetchTimeout    = 10 * time.Second
	maxResponseSize = 5 << 20 // 5 MiB
	maxRedirects    = 5
	userAgent       = "SiteSmithBot/1.0 (+https://sitesmith.app/bot)"
)

// Fetcher retrieves HTML pages with SSRF protection and size limits.
type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher backed by an http.Client with a 10s timeout, a
// transport that refuses to dial private or reserved addresses, and a
// redirect policy that keeps redirect chains on http(s).
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				DialContext:         safeDialer().DialContext,
				MaxConnsPerHost:     10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return &Error{Kind: KindNetworkError, cause: fmt.Errorf("stopped after %d redirects", maxRedirects)}
				}
				if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
					return &Error{Kind: KindBlockedHost, cause: fmt.Errorf("redirect to %s scheme", req.URL.Scheme)}
				}
				return nil
			},
		},
	}
}

// Fetch retrieves the page at rawURL and returns its HTML. It never
// substitutes data on failure: every error path returns a typed *Error
// and an empty string.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", &Error{Kind: KindInvalidURL, cause: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &Error{Kind: KindInvalidURL, cause: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if hostBlocked(u.Hostname()) {
		return "", &Error{Kind: KindBlockedHost}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &Error{Kind: KindInvalidURL, cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Kind: KindNonSuccessStatus, Status: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return "", &Error{Kind: KindNetworkError, cause: fmt.Errorf("unexpected content type %q", ct)}
	}
	if resp.ContentLength > maxResponseSize {
		return "", &Error{Kind: KindTooLarge}
	}

	// Read one byte past the cap so an oversized body is detected even
	// when the server omits Content-Length.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return "", classifyTransportError(err)
	}
	if len(body) > maxResponseSize {
		return "", &Error{Kind: KindTooLarge}
	}

	return string(body), nil
}

// classifyTransportError maps client/transport failures onto fetch kinds.
func classifyTransportError(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		// Dial control or redirect policy error, already typed.
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, cause: err}
	}
	// http.Client wraps its own timeout in a url.Error with Timeout()=true.
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, cause: err}
	}
	return &Error{Kind: KindNetworkError, cause: err}
}
