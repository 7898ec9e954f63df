// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitegen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMetaDescriptionTruncatesOnRuneBoundary(t *testing.T) {
	bu := testProfile()
	// A long multi-byte name lands the 160-char cut inside a rune.
	bu.Name = strings.Repeat("é", 90)

	desc := metaDescription(bu)

	if !utf8.ValidString(desc) {
		t.Fatalf("meta description is not valid UTF-8: %q", desc)
	}
	if !strings.HasSuffix(desc, "…") {
		t.Errorf("truncated description should end with an ellipsis: %q", desc)
	}
	if n := utf8.RuneCountInString(desc); n > 160 {
		t.Errorf("description is %d runes, want at most 160", n)
	}
}

func TestMetaDescriptionShortStaysIntact(t *testing.T) {
	bu := testProfile()
	bu.Services = []string{"repairs"}
	bu.TargetAudience = ""

	desc := metaDescription(bu)

	if !strings.HasSuffix(desc, "Contact us today!") {
		t.Errorf("short description should not be truncated: %q", desc)
	}
}
