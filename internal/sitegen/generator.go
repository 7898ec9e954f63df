// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitegen synthesizes the full render-time website configuration
// from a validated business profile and a selected template. Synthesis is
// deterministic: no randomness and no network calls, so identical inputs
// under a fixed clock produce identical output.
package sitegen

import (
	"strings"
	"time"

	"sitesmith/internal/images"
	"sitesmith/internal/models"
	"sitesmith/internal/slug"
	"sitesmith/internal/templates"
)

// Clock supplies the generatedAt timestamp. Tests inject a fixed clock.
type Clock func() time.Time

// Generator builds WebsiteConfig values.
type Generator struct {
	now Clock
}

// New returns a Generator. A nil clock defaults to time.Now.
func New(clock Clock) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{now: clock}
}

// Generate synthesizes the website configuration for a validated profile.
// scraped may be nil. Returns templates.ErrTemplateNotFound when the id is
// not in the catalog; that error is fatal to the calling job.
func (g *Generator) Generate(bu models.BusinessUnderstanding, templateID string, scraped *models.ScrapedData) (*models.WebsiteConfig, error) {
	tmpl, err := templates.ByID(templateID)
	if err != nil {
		return nil, err
	}

	cfg := &models.WebsiteConfig{
		Meta: models.MetaBlock{
			Title:       metaTitle(bu),
			Description: metaDescription(bu),
			Keywords:    bu.SEOKeywords,
			Slug:        slug.Generate(bu.Name),
		},
		Branding: models.BrandingBlock{
			LogoURL: bu.LogoURL,
			Colors:  bu.BrandColors,
			Tone:    bu.BrandTone,
		},
		Hero: models.HeroBlock{
			Headline:    headline(bu),
			Subheadline: subheadline(bu),
			CTAText:     ctaText(bu.ContactPrefs),
			CTALink:     ctaLink(bu.ContactPrefs),
			HeroImage:   heroImage(bu, scraped),
		},
		Services:     serviceItems(bu),
		About:        models.AboutBlock{Content: aboutContent(bu)},
		LocalSEO:     models.LocalSEOBlock{Keywords: localSEOKeywords(bu)},
		TrustSignals: bu.TrustSignals,
		Footer:       models.FooterBlock{Text: footerText(bu)},
		TemplateID:   tmpl.ID,
		GeneratedAt:  g.now(),
	}

	applySections(cfg, bu, scraped)

	return cfg, nil
}

// serviceItems builds one entry per service with tone-keyed copy. Images
// are assigned round-robin from the gallery; with no gallery, items stay
// imageless until enrichment patches the config.
func serviceItems(bu models.BusinessUnderstanding) []models.ServiceItem {
	var gallery []string
	if bu.ImageAssets != nil {
		gallery = bu.ImageAssets.Gallery
	}

	items := make([]models.ServiceItem, 0, len(bu.Services))
	for i, s := range bu.Services {
		item := models.ServiceItem{
			Name:        s,
			Description: serviceDescription(bu.BrandTone, s),
		}
		if len(gallery) > 0 {
			item.Image = gallery[i%len(gallery)]
		}
		items = append(items, item)
	}
	return items
}

// applySections includes the optional sections the profile asked for.
// Feature matching is a case-insensitive substring test against the
// desiredFeatures list; booking also honors the contact preference.
func applySections(cfg *models.WebsiteConfig, bu models.BusinessUnderstanding, scraped *models.ScrapedData) {
	if wantsFeature(bu.DesiredFeatures, "testimonial") {
		cfg.Testimonials = &models.SectionToggle{Enabled: true}
	}

	if wantsFeature(bu.DesiredFeatures, "contact") {
		contact := &models.ContactSection{
			ShowEmail: bu.ContactPrefs.Email,
			ShowPhone: bu.ContactPrefs.Phone,
		}
		if scraped != nil {
			contact.Email = scraped.Email
			contact.Phone = scraped.Phone
		}
		cfg.Contact = contact
	}

	if wantsFeature(bu.DesiredFeatures, "booking") || bu.ContactPrefs.Booking {
		cfg.Booking = &models.BookingSection{Enabled: true, CTAText: "Book Now"}
	}

	if wantsFeature(bu.DesiredFeatures, "gallery") {
		gallery := &models.GallerySection{}
		if bu.ImageAssets != nil {
			gallery.Images = bu.ImageAssets.Gallery
		}
		cfg.Gallery = gallery
	}

	if wantsFeature(bu.DesiredFeatures, "pricing") {
		cfg.Pricing = &models.SectionToggle{Enabled: true}
	}
}

func wantsFeature(features []string, keyword string) bool {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

// heroImage resolves the hero in precedence order: explicit assets, first
// scraped image, category stock default.
func heroImage(bu models.BusinessUnderstanding, scraped *models.ScrapedData) string {
	if bu.ImageAssets != nil && bu.ImageAssets.Hero != "" {
		return bu.ImageAssets.Hero
	}
	if scraped.HasImages() {
		return scraped.Images[0]
	}
	return images.DefaultHero(bu.Category)
}

func metaTitle(bu models.BusinessUnderstanding) string {
	title := bu.Name
	if bu.Category != "" {
		title += " | " + bu.Category
	}
	if bu.Location != "" {
		title += " in " + bu.Location
	}
	return title
}

func footerText(bu models.BusinessUnderstanding) string {
	if bu.Location != "" {
		return "© " + bu.Name + " · " + bu.Location
	}
	return "© " + bu.Name
}
