// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package understanding

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"sitesmith/internal/models"
)

// legacyProfile is the older intake shape ({businessName, industry, ...})
// that some stored conversations still carry. Decode migrates it into the
// canonical schema; the canonical {name, category, ...} shape wins when
// both are present.
type legacyProfile struct {
	BusinessName  string   `json:"businessName"`
	Industry      string   `json:"industry"`
	ServiceArea   string   `json:"serviceArea"`
	Offerings     []string `json:"offerings"`
	UniqueValue   string   `json:"uniqueValue"`
	IdealCustomer string   `json:"idealCustomer"`
	Tone          string   `json:"tone"`
	Colors        []string `json:"colors"`
	Credentials   []string `json:"credentials"`
	Keywords      []string `json:"keywords"`

	ContactPreferences models.ContactPreferences `json:"contactPreferences"`
	DesiredFeatures    []string                  `json:"desiredFeatures"`
	LogoURL            string                    `json:"logoUrl"`
}

// Decode parses a raw profile, accepting both the canonical schema and the
// legacy intake shape. The result is NOT validated; callers run Validate
// (or Coerce then Validate) on it.
func Decode(raw json.RawMessage) (models.BusinessUnderstanding, error) {
	var bu models.BusinessUnderstanding
	if err := json.Unmarshal(raw, &bu); err != nil {
		return bu, fmt.Errorf("decode understanding: %w", err)
	}
	if bu.Name != "" || bu.Category != "" {
		return bu, nil
	}

	// Canonical keys absent; try the legacy shape.
	var legacy legacyProfile
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return bu, fmt.Errorf("decode legacy understanding: %w", err)
	}
	if legacy.BusinessName == "" && legacy.Industry == "" {
		return bu, nil // neither shape matched; leave zero value for Validate to reject
	}

	return models.BusinessUnderstanding{
		Name:             legacy.BusinessName,
		Category:         legacy.Industry,
		Location:         legacy.ServiceArea,
		Services:         legacy.Offerings,
		ValueProposition: legacy.UniqueValue,
		TargetAudience:   legacy.IdealCustomer,
		BrandTone:        models.BrandTone(strings.ToLower(legacy.Tone)),
		BrandColors:      legacy.Colors,
		TrustSignals:     legacy.Credentials,
		SEOKeywords:      legacy.Keywords,
		ContactPrefs:     legacy.ContactPreferences,
		DesiredFeatures:  legacy.DesiredFeatures,
		LogoURL:          legacy.LogoURL,
	}, nil
}

// Default values used when upstream analysis left required fields empty.
var (
	defaultColors       = []string{"#1a1a2e", "#0f3460"}
	defaultTrustSignals = []string{"Locally owned and operated"}
)

// Coerce fills gaps in an incomplete profile so that generation can still
// proceed after a thin intake or a failed scrape. Scraped data, when
// available, supplies better defaults than the generic ones. The returned
// profile passes Validate whenever Name can be resolved at all.
func Coerce(bu models.BusinessUnderstanding, scraped *models.ScrapedData) models.BusinessUnderstanding {
	if bu.Name == "" && scraped != nil && scraped.Title != "" {
		bu.Name = scraped.Title
	}
	if bu.Category == "" {
		bu.Category = "local business"
	}
	if bu.Location == "" {
		bu.Location = "your area"
	}
	if len(bu.Services) == 0 {
		bu.Services = []string{strings.TrimSpace(bu.Category + " services")}
	}
	if len(bu.Services) > maxServices {
		bu.Services = bu.Services[:maxServices]
	}

	if n := len(bu.ValueProposition); n < minValueProposition {
		if scraped != nil && len(scraped.Description) >= minValueProposition {
			bu.ValueProposition = scraped.Description
		} else {
			bu.ValueProposition = fmt.Sprintf("Quality %s you can count on, delivered by %s.", bu.Services[0], bu.Name)
		}
	}
	if len(bu.ValueProposition) > maxValueProposition {
		// Trim back to a rune boundary so multi-byte text stays valid UTF-8.
		cut := maxValueProposition
		for cut > 0 && !utf8.RuneStart(bu.ValueProposition[cut]) {
			cut--
		}
		bu.ValueProposition = bu.ValueProposition[:cut]
	}

	if len(bu.TargetAudience) < minTargetAudience {
		bu.TargetAudience = "customers in " + bu.Location
	}
	if !bu.BrandTone.Valid() {
		bu.BrandTone = models.ToneProfessional
	}
	if len(bu.BrandColors) == 0 {
		bu.BrandColors = defaultColors
	}
	if len(bu.TrustSignals) == 0 {
		bu.TrustSignals = defaultTrustSignals
	}

	bu.SEOKeywords = padKeywords(bu)

	// Scraped contact details switch the matching preference on when the
	// intake never expressed one.
	if scraped != nil {
		if scraped.Email != "" {
			bu.ContactPrefs.Email = true
		}
		if scraped.Phone != "" {
			bu.ContactPrefs.Phone = true
		}
	}

	return bu
}

// padKeywords tops the keyword list up to the schema minimum from the
// category, services, and location, deduplicating as it goes.
func padKeywords(bu models.BusinessUnderstanding) []string {
	seen := make(map[string]bool, len(bu.SEOKeywords))
	keywords := make([]string, 0, minSEOKeywords)
	push := func(k string) {
		k = strings.TrimSpace(strings.ToLower(k))
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keywords = append(keywords, k)
	}

	for _, k := range bu.SEOKeywords {
		push(k)
	}
	if len(keywords) >= minSEOKeywords {
		if len(keywords) > maxSEOKeywords {
			return keywords[:maxSEOKeywords]
		}
		return keywords
	}

	push(bu.Category)
	push(bu.Category + " " + bu.Location)
	for _, s := range bu.Services {
		push(s)
		push(s + " " + bu.Location)
	}
	push("best " + bu.Category)
	push(bu.Name)

	// Degenerate profiles (category equal to the lone service, say) can
	// still be short here; alternate qualifier phrases close the gap.
	for i, s := range bu.Services {
		if len(keywords) >= minSEOKeywords {
			break
		}
		if i%2 == 0 {
			push("best " + s)
		} else {
			push("professional " + s)
		}
	}
	push(bu.Category + " near me")
	push("professional " + bu.Category)

	return keywords
}
