// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// WebsiteTemplate is one entry of the static template catalog: a layout
// and styling preset the selector matches businesses against. The catalog
// is a process-wide constant set; templates are never created at runtime.
type WebsiteTemplate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	HeroStyle      string   `json:"heroStyle"`
	ServicesLayout string   `json:"servicesLayout"`
	Typography     string   `json:"typography"`
	Categories     []string `json:"categories"`
	Tones          []string `json:"tones"`
}

// TemplateSelectionResult is the outcome of scoring the catalog against a
// business profile. Confidence is a derived 0–100 score, recomputed per
// job and only persisted inside the job's analysis snapshot.
type TemplateSelectionResult struct {
	Template   WebsiteTemplate `json:"template"`
	Confidence int             `json:"confidence"`
	Reason     string          `json:"reason"`
}
