// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ScrapedData is the flat record extracted from one fetched page.
// Every field is optional: a page that yields nothing produces an empty
// (but still usable) record. It lives for one pipeline run only and is
// embedded into the job's analysis blob rather than stored on its own.
type ScrapedData struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Images      []string `json:"images,omitempty"`
	Headings    []string `json:"headings,omitempty"`

	// Error carries the fetch/extract failure kind when scraping was
	// attempted and failed. Scraping failure never fails the job.
	Error string `json:"error,omitempty"`
}

// HasImages reports whether the scrape yielded any image candidates.
func (s *ScrapedData) HasImages() bool {
	return s != nil && len(s.Images) > 0
}
