// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// WebsiteConfig is the full render contract for a generated marketing site.
// It is renderer-agnostic: the front-end reads this JSON and lays out the
// page, so everything a template needs must be resolved here. One active
// config exists per business; regeneration overwrites it.
type WebsiteConfig struct {
	Meta         MetaBlock        `json:"meta"`
	Branding     BrandingBlock    `json:"branding"`
	Hero         HeroBlock        `json:"hero"`
	Services     []ServiceItem    `json:"services"`
	About        AboutBlock       `json:"about"`
	Testimonials *SectionToggle   `json:"testimonials,omitempty"`
	Contact      *ContactSection  `json:"contact,omitempty"`
	Booking      *BookingSection  `json:"booking,omitempty"`
	Gallery      *GallerySection  `json:"gallery,omitempty"`
	Pricing      *SectionToggle   `json:"pricingTable,omitempty"`
	LocalSEO     LocalSEOBlock    `json:"localSeo"`
	TrustSignals []string         `json:"trustSignals"`
	Footer       FooterBlock      `json:"footer"`
	TemplateID   string           `json:"templateId"`
	GeneratedAt  time.Time        `json:"generatedAt"`
}

// MetaBlock holds SEO metadata for the page head.
type MetaBlock struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Slug        string   `json:"slug"`
}

// BrandingBlock carries the visual identity inputs the renderer applies.
type BrandingBlock struct {
	LogoURL string    `json:"logoUrl,omitempty"`
	Colors  []string  `json:"colors"`
	Tone    BrandTone `json:"tone"`
}

// HeroBlock is the above-the-fold section.
type HeroBlock struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
	HeroImage   string `json:"heroImage"`
}

// ServiceItem is one entry in the services section.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// AboutBlock is the about/story section.
type AboutBlock struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// SectionToggle marks an optional section as enabled. Sections using it
// carry no generated content of their own; the renderer supplies layout.
type SectionToggle struct {
	Enabled bool `json:"enabled"`
}

// ContactSection configures the contact block.
type ContactSection struct {
	ShowEmail bool   `json:"showEmail"`
	ShowPhone bool   `json:"showPhone"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// BookingSection configures the booking call-to-action block.
type BookingSection struct {
	Enabled bool   `json:"enabled"`
	CTAText string `json:"ctaText"`
}

// GallerySection lists the gallery images.
type GallerySection struct {
	Images []string `json:"images"`
}

// LocalSEOBlock carries location-targeted keyword phrases.
type LocalSEOBlock struct {
	Keywords []string `json:"keywords"`
}

// FooterBlock is the site footer line.
type FooterBlock struct {
	Text string `json:"text"`
}
