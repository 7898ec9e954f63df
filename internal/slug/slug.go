// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for generated sites.
package slug

import "strings"

// maxLen caps slug length so generated paths stay manageable. The cut
// lands on a hyphen boundary when possible.
const maxLen = 80

// Generate creates a URL-friendly slug from the given string.
// Example: "Joe's Plumbing & Heating" → "joes-plumbing-heating"
func Generate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// Everything else (punctuation, symbols, non-ASCII) is dropped.
	}

	out := strings.TrimRight(b.String(), "-")
	if len(out) > maxLen {
		out = out[:maxLen]
		if i := strings.LastIndexByte(out, '-'); i > 0 {
			out = out[:i]
		}
	}
	return out
}

// WithSuffix appends a short disambiguating suffix, used when two
// businesses normalize to the same slug.
func WithSuffix(s, suffix string) string {
	base := Generate(s)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
