// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package images guarantees every generated website a minimum image set
// (one hero plus a gallery) through a layered strategy: scraped candidates
// first, then an external stock-photo search, then a curated per-category
// fallback catalog. Providers implement the SearchProvider interface and
// the Registry selects the active one by name.
package images

import (
	"context"
	"fmt"
	"sync"
)

// SearchProvider is the capability interface for external image search.
// Implementations turn a keyword query into a list of image URLs.
type SearchProvider interface {
	// Search returns up to limit landscape-oriented image URLs for query.
	Search(ctx context.Context, query string, limit int) ([]string, error)

	// Name returns the provider identifier (e.g., "unsplash", "pexels").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

// Registry manages available image-search providers and selects the
// active one. All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]SearchProvider
	active    string
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped,
// so the pipeline degrades to the fallback catalog when no key is set.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]SearchProvider),
		active:    active,
	}
	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "unsplash":
			r.providers[name] = newUnsplash(cfg)
		case "pexels":
			r.providers[name] = newPexels(cfg)
		}
	}
	return r
}

// Search calls the active provider. Returns an error if no provider is
// configured; callers treat that as a soft failure and fall through to
// the next enrichment tier.
func (r *Registry) Search(ctx context.Context, query string, limit int) ([]string, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}
	return p.Search(ctx, query, limit)
}

// Active returns the currently active provider.
func (r *Registry) Active() (SearchProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("images: no provider configured for %q", r.active)
	}
	return p, nil
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p SearchProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
