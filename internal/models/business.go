// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationStatus is the persisted generation state on a business record.
type GenerationStatus string

const (
	GenerationStatusNone      GenerationStatus = "none"
	GenerationStatusPending   GenerationStatus = "pending"
	GenerationStatusCompleted GenerationStatus = "completed"
	GenerationStatusFailed    GenerationStatus = "failed"
)

// Business is the owning record a generation job writes its result to.
// Only the generation-related fields are modeled here; leads, bookings,
// teams and billing live in the surrounding product.
type Business struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`

	TemplateID       *string          `json:"template_id,omitempty"`
	WebsiteConfig    *WebsiteConfig   `json:"website_config,omitempty"`
	ImageAssets      *ImageAssets     `json:"image_assets,omitempty"`
	GenerationStatus GenerationStatus `json:"generation_status"`
	GenerationStep   *string          `json:"generation_step,omitempty"`

	// Analysis is the audit trail of the last generation run (scrape
	// outcome, template selection, image source). Written as a JSON merge,
	// so earlier keys survive partial updates.
	Analysis json.RawMessage `json:"analysis,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPublishedSite reports whether the business has a live generated config.
// A failed regeneration must leave this untouched.
func (b *Business) HasPublishedSite() bool {
	return b.WebsiteConfig != nil
}
