// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// BrandTone is the voice a generated website speaks in. It drives copy
// synthesis and template scoring.
type BrandTone string

const (
	ToneProfessional BrandTone = "professional"
	ToneFriendly     BrandTone = "friendly"
	ToneLuxury       BrandTone = "luxury"
	ToneBold         BrandTone = "bold"
	ToneCasual       BrandTone = "casual"
)

// KnownTones lists every valid BrandTone value.
var KnownTones = []BrandTone{
	ToneProfessional, ToneFriendly, ToneLuxury, ToneBold, ToneCasual,
}

// Valid reports whether the tone is one of the five known values.
func (t BrandTone) Valid() bool {
	for _, known := range KnownTones {
		if t == known {
			return true
		}
	}
	return false
}

// ContactPreferences records which contact channels the business wants
// surfaced on the generated site.
type ContactPreferences struct {
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
	Booking bool `json:"booking"`
}

// ImageAssets holds the resolved image set for a generated website:
// one hero image plus a gallery used for services and the about section.
type ImageAssets struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery"`
}

// Total returns the number of images across hero and gallery.
func (a ImageAssets) Total() int {
	n := len(a.Gallery)
	if a.Hero != "" {
		n++
	}
	return n
}

// BusinessUnderstanding is the canonical structured profile of a business.
// It is produced by the intake conversation or the scraping analysis,
// validated once at the job boundary, and treated as immutable input to
// website generation from then on.
type BusinessUnderstanding struct {
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Location         string             `json:"location"`
	Services         []string           `json:"services"`
	ValueProposition string             `json:"valueProposition"`
	TargetAudience   string             `json:"targetAudience"`
	BrandTone        BrandTone          `json:"brandTone"`
	BrandColors      []string           `json:"brandColors"`
	TrustSignals     []string           `json:"trustSignals"`
	SEOKeywords      []string           `json:"seoKeywords"`
	ContactPrefs     ContactPreferences `json:"contactPreferences"`

	// Optional fields.
	DesiredFeatures []string     `json:"desiredFeatures,omitempty"`
	LogoURL         string       `json:"logoUrl,omitempty"`
	ImageAssets     *ImageAssets `json:"imageAssets,omitempty"`
}
