// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templates holds the static website-template catalog and the
// scoring heuristic that matches a business profile to the best template.
package templates

import (
	"fmt"

	"sitesmith/internal/models"
)

// Template IDs, stable across releases — persisted on business records.
const (
	IDImageHeavy   = "image-heavy"
	IDServiceHeavy = "service-heavy"
	IDLuxury       = "luxury"
)

// catalog is the process-wide constant template set. Loaded once; never
// mutated at runtime.
var catalog = []models.WebsiteTemplate{
	{
		ID:             IDImageHeavy,
		Name:           "Visual Showcase",
		HeroStyle:      "fullscreen-image",
		ServicesLayout: "photo-cards",
		Typography:     "modern-sans",
		Categories: []string{
			"restaurant", "cafe", "bakery", "food", "catering", "bar",
			"photography", "salon", "beauty", "barber", "fashion",
			"boutique", "florist", "art", "design", "travel",
		},
		Tones: []string{"friendly", "bold", "casual"},
	},
	{
		ID:             IDServiceHeavy,
		Name:           "Service Pro",
		HeroStyle:      "split-with-form",
		ServicesLayout: "detailed-list",
		Typography:     "clean-sans",
		Categories: []string{
			"plumbing", "electrician", "hvac", "cleaning", "landscaping",
			"construction", "repair", "consulting", "legal", "accounting",
			"insurance", "marketing", "medical", "dental", "automotive",
			"moving",
		},
		Tones: []string{"professional"},
	},
	{
		ID:             IDLuxury,
		Name:           "Signature Luxe",
		HeroStyle:      "cinematic",
		ServicesLayout: "minimal-grid",
		Typography:     "serif-display",
		Categories: []string{
			"spa", "jewelry", "real estate", "interior design",
			"wellness", "winery", "hotel", "aesthetics",
		},
		Tones: []string{"luxury"},
	},
}

// ErrTemplateNotFound is returned when a template id is not in the catalog.
// It is fatal to the job that supplied the id.
var ErrTemplateNotFound = fmt.Errorf("templates: template not found")

// Catalog returns the full template set, in catalog order.
func Catalog() []models.WebsiteTemplate {
	return catalog
}

// ByID looks a template up by its id.
func ByID(id string) (models.WebsiteTemplate, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return models.WebsiteTemplate{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}
