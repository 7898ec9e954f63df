// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitegen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"sitesmith/internal/models"
)

// serviceTemplates are the tone-keyed sentence patterns for service
// descriptions. Selection is purely by tone; no randomness, so repeated
// generation yields identical copy.
var serviceTemplates = map[models.BrandTone]string{
	models.ToneProfessional: "Our %s service is delivered with precision and accountability, every time.",
	models.ToneFriendly:     "We make %s easy: friendly service, honest advice, and no surprises.",
	models.ToneLuxury:       "Experience %s elevated to an art form and tailored to the most discerning clients.",
	models.ToneBold:         "%s done right. No shortcuts, no excuses, just results.",
	models.ToneCasual:       "Need %s? We've got you covered, quick and hassle-free.",
}

// aboutClosings are the tone-keyed final sentences of the about section.
var aboutClosings = map[models.BrandTone]string{
	models.ToneProfessional: "We look forward to putting our expertise to work for you.",
	models.ToneFriendly:     "Stop by or say hello, we'd love to meet you.",
	models.ToneLuxury:       "We invite you to experience the difference for yourself.",
	models.ToneBold:         "Ready when you are. Let's get started.",
	models.ToneCasual:       "Come see what we're all about.",
}

// serviceDescription renders the tone-keyed copy for one service.
func serviceDescription(tone models.BrandTone, service string) string {
	tmpl, ok := serviceTemplates[tone]
	if !ok {
		tmpl = serviceTemplates[models.ToneProfessional]
	}
	return fmt.Sprintf(tmpl, service)
}

// headline picks the hero headline: the value proposition when it reads
// like one (10–100 chars), a service-led line otherwise, and a plain
// welcome as the last resort.
func headline(bu models.BusinessUnderstanding) string {
	if n := len(bu.ValueProposition); n > 10 && n < 100 {
		return bu.ValueProposition
	}
	if len(bu.Services) > 0 {
		return fmt.Sprintf("Professional %s Services You Can Trust", bu.Services[0])
	}
	return "Welcome to " + bu.Name
}

// subheadline concatenates whichever parts the profile provides.
func subheadline(bu models.BusinessUnderstanding) string {
	var parts []string
	if bu.TargetAudience != "" {
		parts = append(parts, "Helping "+bu.TargetAudience)
	}
	if len(bu.Services) > 0 {
		parts = append(parts, "with "+strings.Join(topN(bu.Services, 3), ", "))
	}
	if bu.Location != "" {
		parts = append(parts, "in "+bu.Location)
	}
	if len(parts) == 0 {
		return "Quality service from a local business you can rely on."
	}
	return strings.Join(parts, " ")
}

// ctaText maps contact preferences to the call-to-action label, in the
// fixed priority booking > phone > email.
func ctaText(prefs models.ContactPreferences) string {
	switch {
	case prefs.Booking:
		return "Book Now"
	case prefs.Phone:
		return "Call Us Today"
	case prefs.Email:
		return "Get in Touch"
	default:
		return "Learn More"
	}
}

func ctaLink(prefs models.ContactPreferences) string {
	if prefs.Booking {
		return "#booking"
	}
	return "#contact"
}

// aboutContent builds the about section from the value proposition, the
// audience, up to three trust signals, and a tone-keyed closing sentence.
func aboutContent(bu models.BusinessUnderstanding) string {
	var b strings.Builder

	if bu.ValueProposition != "" {
		b.WriteString(bu.ValueProposition)
	} else {
		fmt.Fprintf(&b, "At %s, we take pride in the work we do for our community.", bu.Name)
	}

	if bu.TargetAudience != "" {
		fmt.Fprintf(&b, " We proudly serve %s.", bu.TargetAudience)
	}

	if len(bu.TrustSignals) > 0 {
		fmt.Fprintf(&b, " Our customers choose us for %s.", joinNatural(topN(bu.TrustSignals, 3)))
	}

	closing, ok := aboutClosings[bu.BrandTone]
	if !ok {
		closing = aboutClosings[models.ToneProfessional]
	}
	b.WriteString(" " + closing)

	return b.String()
}

// metaDescription renders the SEO description, hard-capped at 160 chars.
func metaDescription(bu models.BusinessUnderstanding) string {
	desc := fmt.Sprintf("%s offers %s", bu.Name, strings.Join(topN(bu.Services, 3), ", "))
	if bu.Location != "" {
		desc += " in " + bu.Location
	}
	if bu.TargetAudience != "" {
		desc += " for " + bu.TargetAudience
	}
	desc += ". Contact us today!"

	const maxLen = 160
	if len(desc) > maxLen {
		desc = cutAtRune(desc, maxLen-1) + "…"
	}
	return desc
}

// cutAtRune shortens s to at most n bytes without splitting a rune, so
// non-ASCII names and locations never produce invalid UTF-8.
func cutAtRune(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// localSEOKeywords emits location-targeted phrases: per-service location
// and near-me pairs, category/location combinations, and a quality phrase
// per service. The quality adjective rotates by index so output stays
// deterministic.
func localSEOKeywords(bu models.BusinessUnderstanding) []string {
	var keywords []string

	for _, s := range topN(bu.Services, 3) {
		if bu.Location != "" {
			keywords = append(keywords, s+" "+bu.Location)
		}
		keywords = append(keywords, s+" near me")
	}

	if bu.Location != "" {
		keywords = append(keywords,
			bu.Category+" in "+bu.Location,
			bu.Location+" "+bu.Category,
		)
	}

	for i, s := range topN(bu.Services, 5) {
		if i%2 == 0 {
			keywords = append(keywords, "best "+s)
		} else {
			keywords = append(keywords, "professional "+s)
		}
	}

	return keywords
}

// joinNatural joins items as "a, b, and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func topN(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
