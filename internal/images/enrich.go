// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"sitesmith/internal/models"
)

// Image source tiers, highest priority first.
const (
	SourceScraped  = "scraped"
	SourceSearch   = "unsplash"
	SourceFallback = "fallback"
)

const (
	// minImages is the guaranteed floor: hero plus at least two gallery
	// images whenever the fallback catalog can supply them.
	minImages = 3

	// targetImages is what the backfill tiers aim for.
	targetImages = 4

	// maxScrapedCandidates caps how many scraped URLs get validated.
	maxScrapedCandidates = 5
)

// Result is the outcome of one enrichment run.
type Result struct {
	Assets models.ImageAssets `json:"assets"`
	Source string             `json:"source"`
	Count  int                `json:"count"`
}

// Engine backfills a business's image set to the guaranteed minimum.
// Every external failure is soft: the engine logs and falls through to
// the next tier, ending at the static fallback catalog.
type Engine struct {
	registry *Registry
	checker  Checker
	logger   *slog.Logger
}

// NewEngine creates an enrichment engine. The registry may have no
// configured providers; enrichment then skips straight to the catalog.
func NewEngine(registry *Registry, checker Checker) *Engine {
	return &Engine{
		registry: registry,
		checker:  checker,
		logger:   slog.Default(),
	}
}

// Enrich resolves the final image set for a business, in strict priority
// order: validated scraped images, then provider search by category and
// business name, then by SEO keywords, then the curated category catalog.
// Later tiers only run while the running count is below the minimum.
func (e *Engine) Enrich(ctx context.Context, scraped []string, category string, keywords []string, businessName string) Result {
	set := newImageSet()
	source := SourceFallback

	// Tier 1: validate scraped candidates concurrently. Order of the
	// original document is preserved regardless of response order.
	if valid := e.validateScraped(ctx, scraped); len(valid) > 0 {
		source = SourceScraped
		for _, u := range valid {
			set.add(u)
		}
	}

	// Tier 2: provider search keyed by category and business name.
	if set.len() < minImages {
		query := strings.TrimSpace(category + " " + businessName)
		if found := e.search(ctx, query, targetImages); len(found) > 0 {
			if source == SourceFallback {
				source = e.searchSource()
			}
			for _, u := range found {
				set.add(u)
			}
		}
	}

	// Tier 3: provider search keyed by the leading SEO keywords.
	if set.len() < minImages && len(keywords) > 0 {
		query := strings.Join(firstN(keywords, 2), " ")
		want := targetImages - set.len()
		if found := e.search(ctx, query, want); len(found) > 0 {
			if source == SourceFallback {
				source = e.searchSource()
			}
			for _, u := range found {
				set.add(u)
			}
		}
	}

	// Tier 4: curated category catalog up to the target count.
	if set.len() < minImages {
		for _, u := range FallbackSet(category) {
			if set.len() >= targetImages {
				break
			}
			set.add(u)
		}
	}

	// Last resort: top up from the generic set. The loop is bounded by
	// the catalog size, so it cannot spin forever.
	for _, u := range defaultFallbacks {
		if set.len() >= minImages {
			break
		}
		set.add(u)
	}

	urls := set.urls
	assets := models.ImageAssets{}
	if len(urls) > 0 {
		assets.Hero = urls[0]
		assets.Gallery = urls[1:]
	}

	return Result{Assets: assets, Source: source, Count: len(urls)}
}

// FallbackAssets is the synchronous, no-network variant: it returns the
// category catalog immediately. Used for previews where latency matters
// more than image variety.
func FallbackAssets(category string) Result {
	set := FallbackSet(category)
	return Result{
		Assets: models.ImageAssets{Hero: set[0], Gallery: set[1:]},
		Source: SourceFallback,
		Count:  len(set),
	}
}

// validateScraped HEAD-checks up to five candidates in parallel and
// returns the ones that answered with a real image, in input order.
func (e *Engine) validateScraped(ctx context.Context, candidates []string) []string {
	candidates = firstN(candidates, maxScrapedCandidates)
	if len(candidates) == 0 || e.checker == nil {
		return nil
	}

	ok := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range candidates {
		i, u := i, u
		g.Go(func() error {
			if err := e.checker.Check(gctx, u); err != nil {
				e.logger.Debug("scraped image rejected", "url", u, "error", err)
				return nil
			}
			ok[i] = true
			return nil
		})
	}
	// Workers only report via the ok slice; Wait is for synchronization.
	_ = g.Wait()

	var valid []string
	for i, u := range candidates {
		if ok[i] {
			valid = append(valid, u)
		}
	}
	return valid
}

func (e *Engine) search(ctx context.Context, query string, limit int) []string {
	if e.registry == nil || limit <= 0 {
		return nil
	}
	found, err := e.registry.Search(ctx, query, limit)
	if err != nil {
		e.logger.Warn("image search failed, falling through", "query", query, "error", err)
		return nil
	}
	return found
}

// searchSource names the tier that the active provider contributes under.
func (e *Engine) searchSource() string {
	if e.registry != nil {
		if p, err := e.registry.Active(); err == nil {
			return p.Name()
		}
	}
	return SourceSearch
}

// imageSet is an ordered, deduplicated URL collection.
type imageSet struct {
	urls []string
	seen map[string]bool
}

func newImageSet() *imageSet {
	return &imageSet{seen: make(map[string]bool)}
}

func (s *imageSet) add(u string) {
	if u == "" || s.seen[u] {
		return
	}
	s.seen[u] = true
	s.urls = append(s.urls, u)
}

func (s *imageSet) len() int { return len(s.urls) }

func firstN(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
