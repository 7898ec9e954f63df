// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"sitesmith/internal/models"
)

// Criteria are the business signals the selector scores templates against.
// Services and HasImages refine the score when known; a nil Services slice
// means the service count is unknown and contributes nothing.
type Criteria struct {
	Category  string
	BrandTone string
	Services  []string
	HasImages bool
}

// Recommendation is the ranked output of Recommend.
type Recommendation struct {
	Recommended  models.TemplateSelectionResult   `json:"recommended"`
	Alternatives []models.TemplateSelectionResult `json:"alternatives"`
}

// Scoring weights. Category dominates, tone refines, the rest nudges.
const (
	categoryWeight = 0.40
	toneWeight     = 0.35

	serviceHeavyBonus = 15 // five or more services
	imageHeavyBonus   = 10 // two or fewer services
	imageSignalBonus  = 10

	lowConfidenceFloor = 30
)

// professionalKeywords and visualKeywords drive the low-confidence
// fallback ladder when scoring produced no clear winner.
var professionalKeywords = []string{
	"plumb", "electric", "hvac", "repair", "clean", "landscap",
	"consult", "legal", "law", "account", "insurance", "medical",
	"dental", "contractor", "construction",
}

var visualKeywords = []string{
	"restaurant", "cafe", "bakery", "food", "photo", "salon", "beauty",
	"barber", "fashion", "boutique", "florist", "art", "design", "travel",
}

// Select scores the catalog against the criteria and returns the best
// match. It never fails: a weak match falls back to a keyword-driven
// default, possibly with low confidence.
func Select(criteria Criteria) models.TemplateSelectionResult {
	ranked := rank(criteria)
	best := ranked[0]

	if best.Confidence >= lowConfidenceFloor {
		return best
	}

	// No template scored convincingly; apply the fallback ladder.
	tone := normalize(criteria.BrandTone)
	category := normalize(criteria.Category)

	if tone == "luxury" {
		return forced(IDLuxury, 70, "brand tone is luxury")
	}
	for _, kw := range professionalKeywords {
		if strings.Contains(category, kw) {
			return forced(IDServiceHeavy, 60, fmt.Sprintf("category suggests professional services (%q)", kw))
		}
	}
	for _, kw := range visualKeywords {
		if strings.Contains(category, kw) {
			return forced(IDImageHeavy, 60, fmt.Sprintf("category suggests a visual industry (%q)", kw))
		}
	}

	// Keep the best-scored result even if confidence stays low.
	return best
}

// Recommend returns the full ranked list: the winner plus alternates.
// Same scoring as Select, without the fallback ladder.
func Recommend(criteria Criteria) Recommendation {
	ranked := rank(criteria)
	return Recommendation{
		Recommended:  ranked[0],
		Alternatives: ranked[1:],
	}
}

func rank(criteria Criteria) []models.TemplateSelectionResult {
	results := make([]models.TemplateSelectionResult, 0, len(catalog))
	for _, t := range catalog {
		score, reason := scoreTemplate(t, criteria)
		results = append(results, models.TemplateSelectionResult{
			Template:   t,
			Confidence: clamp(score, 0, 100),
			Reason:     reason,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

func scoreTemplate(t models.WebsiteTemplate, c Criteria) (int, string) {
	var reasons []string

	catScore := categoryScore(t, c.Category)
	if catScore > 0 {
		reasons = append(reasons, fmt.Sprintf("category match %d", catScore))
	}

	tnScore := toneScore(t, c.BrandTone)
	if tnScore > 0 {
		reasons = append(reasons, fmt.Sprintf("tone match %d", tnScore))
	}

	total := float64(catScore)*categoryWeight + float64(tnScore)*toneWeight

	if c.Services != nil {
		switch {
		case len(c.Services) >= 5 && t.ID == IDServiceHeavy:
			total += serviceHeavyBonus
			reasons = append(reasons, "many services")
		case len(c.Services) <= 2 && t.ID == IDImageHeavy:
			total += imageHeavyBonus
			reasons = append(reasons, "few services")
		}
	}

	if c.HasImages && t.ID == IDImageHeavy {
		total += imageSignalBonus
		reasons = append(reasons, "images available")
	}
	if !c.HasImages && t.ID == IDServiceHeavy {
		total += imageSignalBonus
		reasons = append(reasons, "no images available")
	}

	reason := "no matching signals"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}
	return int(total + 0.5), reason
}

// categoryScore compares the business category against every category the
// template claims, keeping the strongest signal: exact normalized match,
// substring containment either direction, then whole-word overlap.
func categoryScore(t models.WebsiteTemplate, category string) int {
	target := normalize(category)
	if target == "" {
		return 0
	}
	targetWords := words(category)

	best := 0
	for _, c := range t.Categories {
		candidate := normalize(c)
		switch {
		case candidate == target:
			return 100
		case strings.Contains(target, candidate) || strings.Contains(candidate, target):
			if best < 70 {
				best = 70
			}
		case wordOverlap(targetWords, words(c)):
			if best < 50 {
				best = 50
			}
		}
	}
	return best
}

// toneScore rewards an exact tone match, then falls back to substring
// heuristics that map tone vocabulary onto template styles.
func toneScore(t models.WebsiteTemplate, tone string) int {
	target := normalize(tone)
	if target == "" {
		return 0
	}
	for _, candidate := range t.Tones {
		if normalize(candidate) == target {
			return 100
		}
	}

	switch t.ID {
	case IDLuxury:
		if containsAny(target, "luxur", "premium", "elegant") {
			return 80
		}
	case IDServiceHeavy:
		if containsAny(target, "professional", "corporate", "formal") {
			return 80
		}
	case IDImageHeavy:
		if containsAny(target, "creative", "bold", "fun", "casual") {
			return 80
		}
	}
	return 0
}

func forced(id string, confidence int, reason string) models.TemplateSelectionResult {
	t, _ := ByID(id)
	return models.TemplateSelectionResult{
		Template:   t,
		Confidence: confidence,
		Reason:     "fallback: " + reason,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// normalize lowercases, trims, and strips every non-alphanumeric rune so
// "Real Estate" and "real-estate" compare equal.
func normalize(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// words splits on non-alphanumeric boundaries, keeping words of 3+ runes.
func words(s string) []string {
	var out []string
	for _, w := range nonAlphanumeric.Split(strings.ToLower(s), -1) {
		if len(w) >= 3 {
			out = append(out, w)
		}
	}
	return out
}

func wordOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
