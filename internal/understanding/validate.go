// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package understanding validates and normalizes the structured business
// profile that drives website generation. A profile either passes the full
// schema or is rejected with field-level errors; nothing downstream ever
// sees a partially valid profile.
package understanding

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"sitesmith/internal/models"
)

// Field length and cardinality limits from the profile schema.
const (
	minServices = 1
	maxServices = 10

	minValueProposition = 10
	maxValueProposition = 500

	minTargetAudience = 5
	maxTargetAudience = 300

	minBrandColors = 1
	maxBrandColors = 5

	minTrustSignals = 1
	maxTrustSignals = 5

	minSEOKeywords = 5
	maxSEOKeywords = 20
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// FieldError describes one schema violation in human-readable form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a candidate profile against the full schema. It does not
// short-circuit: every violation is collected in one pass so the caller
// can report them all at once. A nil return means the profile is valid.
func Validate(bu models.BusinessUnderstanding) []FieldError {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(bu.Name) == "" {
		add("name", "name is required")
	}
	if strings.TrimSpace(bu.Category) == "" {
		add("category", "category is required")
	}
	if strings.TrimSpace(bu.Location) == "" {
		add("location", "location is required")
	}

	switch n := len(bu.Services); {
	case n < minServices:
		add("services", "at least %d service is required", minServices)
	case n > maxServices:
		add("services", "at most %d services are allowed, got %d", maxServices, n)
	}
	for i, s := range bu.Services {
		if strings.TrimSpace(s) == "" {
			add("services", "service %d must not be empty", i+1)
		}
	}

	if n := utf8.RuneCountInString(bu.ValueProposition); n < minValueProposition || n > maxValueProposition {
		add("valueProposition", "must be between %d and %d characters, got %d",
			minValueProposition, maxValueProposition, n)
	}
	if n := utf8.RuneCountInString(bu.TargetAudience); n < minTargetAudience || n > maxTargetAudience {
		add("targetAudience", "must be between %d and %d characters, got %d",
			minTargetAudience, maxTargetAudience, n)
	}

	if !bu.BrandTone.Valid() {
		add("brandTone", "must be one of professional, friendly, luxury, bold, casual; got %q", bu.BrandTone)
	}

	switch n := len(bu.BrandColors); {
	case n < minBrandColors:
		add("brandColors", "at least %d brand color is required", minBrandColors)
	case n > maxBrandColors:
		add("brandColors", "at most %d brand colors are allowed, got %d", maxBrandColors, n)
	}
	for i, c := range bu.BrandColors {
		if !hexColor.MatchString(c) {
			add("brandColors", "color %d must be a hex value like #1a2b3c, got %q", i+1, c)
		}
	}

	switch n := len(bu.TrustSignals); {
	case n < minTrustSignals:
		add("trustSignals", "at least %d trust signal is required", minTrustSignals)
	case n > maxTrustSignals:
		add("trustSignals", "at most %d trust signals are allowed, got %d", maxTrustSignals, n)
	}

	switch n := len(bu.SEOKeywords); {
	case n < minSEOKeywords:
		add("seoKeywords", "at least %d SEO keywords are required, got %d", minSEOKeywords, n)
	case n > maxSEOKeywords:
		add("seoKeywords", "at most %d SEO keywords are allowed, got %d", maxSEOKeywords, n)
	}

	return errs
}
