// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package understanding

import (
	"strings"
	"testing"

	"sitesmith/internal/models"
)

// validProfile returns a profile that passes the full schema. Tests mutate
// one field at a time.
func validProfile() models.BusinessUnderstanding {
	return models.BusinessUnderstanding{
		Name:             "Joe's Plumbing",
		Category:         "plumbing",
		Location:         "Austin, TX",
		Services:         []string{"drain cleaning", "water heaters"},
		ValueProposition: "Fast, honest plumbing with upfront pricing.",
		TargetAudience:   "Austin homeowners",
		BrandTone:        models.ToneProfessional,
		BrandColors:      []string{"#1a2b3c", "#fff"},
		TrustSignals:     []string{"Licensed and insured"},
		SEOKeywords:      []string{"plumber austin", "drain cleaning", "water heater repair", "emergency plumber", "licensed plumber"},
	}
}

func TestValidateAccepts(t *testing.T) {
	if errs := Validate(validProfile()); len(errs) != 0 {
		t.Errorf("valid profile rejected: %v", errs)
	}
}

func TestValidateFieldViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.BusinessUnderstanding)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.Name = "  " },
			wantField: "name",
		},
		{
			name:      "missing category",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.Category = "" },
			wantField: "category",
		},
		{
			name:      "missing location",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.Location = "" },
			wantField: "location",
		},
		{
			name:      "no services",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.Services = nil },
			wantField: "services",
		},
		{
			name: "too many services",
			mutate: func(bu *models.BusinessUnderstanding) {
				bu.Services = make([]string, 11)
				for i := range bu.Services {
					bu.Services[i] = "svc"
				}
			},
			wantField: "services",
		},
		{
			name:      "blank service entry",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.Services = []string{"ok", " "} },
			wantField: "services",
		},
		{
			name:      "value proposition too short",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.ValueProposition = "short" },
			wantField: "valueProposition",
		},
		{
			name: "value proposition too long",
			mutate: func(bu *models.BusinessUnderstanding) {
				bu.ValueProposition = strings.Repeat("x", 501)
			},
			wantField: "valueProposition",
		},
		{
			name:      "target audience too short",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.TargetAudience = "all" },
			wantField: "targetAudience",
		},
		{
			name:      "unknown brand tone",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.BrandTone = "quirky" },
			wantField: "brandTone",
		},
		{
			name:      "no brand colors",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.BrandColors = nil },
			wantField: "brandColors",
		},
		{
			name:      "invalid hex color",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.BrandColors = []string{"blue"} },
			wantField: "brandColors",
		},
		{
			name:      "no trust signals",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.TrustSignals = nil },
			wantField: "trustSignals",
		},
		{
			name:      "too few seo keywords",
			mutate:    func(bu *models.BusinessUnderstanding) { bu.SEOKeywords = []string{"one", "two"} },
			wantField: "seoKeywords",
		},
		{
			name: "too many seo keywords",
			mutate: func(bu *models.BusinessUnderstanding) {
				bu.SEOKeywords = make([]string, 21)
				for i := range bu.SEOKeywords {
					bu.SEOKeywords[i] = "kw"
				}
			},
			wantField: "seoKeywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bu := validProfile()
			tt.mutate(&bu)

			errs := Validate(bu)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			for _, e := range errs {
				if e.Field == tt.wantField {
					return
				}
			}
			t.Errorf("no error for field %q in %v", tt.wantField, errs)
		})
	}
}

// TestValidateCollectsAll verifies validation does not stop at the first
// violation.
func TestValidateCollectsAll(t *testing.T) {
	bu := models.BusinessUnderstanding{} // violates nearly everything

	errs := Validate(bu)
	if len(errs) < 8 {
		t.Errorf("expected every violation collected, got %d: %v", len(errs), errs)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"name", "category", "location", "services", "valueProposition", "targetAudience", "brandTone", "brandColors", "trustSignals", "seoKeywords"} {
		if !fields[want] {
			t.Errorf("missing violation for %q", want)
		}
	}
}

func TestFieldErrorMessage(t *testing.T) {
	e := FieldError{Field: "category", Message: "category is required"}
	if got := e.Error(); got != "category: category is required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidColorFormats(t *testing.T) {
	bu := validProfile()
	bu.BrandColors = []string{"#abc", "#A1B2C3"}
	if errs := Validate(bu); len(errs) != 0 {
		t.Errorf("3- and 6-digit hex colors should pass: %v", errs)
	}
}
