// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitegen

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"sitesmith/internal/models"
	"sitesmith/internal/templates"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func testProfile() models.BusinessUnderstanding {
	return models.BusinessUnderstanding{
		Name:             "Joe's Plumbing",
		Category:         "plumbing",
		Location:         "Austin, TX",
		Services:         []string{"drain cleaning", "water heaters", "leak repair", "repiping"},
		ValueProposition: "Fast, honest plumbing with upfront pricing.",
		TargetAudience:   "Austin homeowners",
		BrandTone:        models.ToneProfessional,
		BrandColors:      []string{"#1a2b3c", "#fff"},
		TrustSignals:     []string{"Licensed and insured", "Since 1982", "5-star rated", "BBB accredited"},
		SEOKeywords:      []string{"plumber austin", "drain cleaning", "water heater repair", "emergency plumber", "licensed plumber"},
		ContactPrefs:     models.ContactPreferences{Phone: true},
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := New(fixedClock)
	bu := testProfile()

	first, err := g.Generate(bu, templates.IDServiceHeavy, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := g.Generate(bu, templates.IDServiceHeavy, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("identical inputs produced different configs:\n%s\n%s", a, b)
	}
	if !first.GeneratedAt.Equal(fixedTime) {
		t.Errorf("generatedAt = %v, want fixed clock", first.GeneratedAt)
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	g := New(fixedClock)

	_, err := g.Generate(testProfile(), "no-such-template", nil)
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestGenerateMetaAndBranding(t *testing.T) {
	g := New(fixedClock)
	cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if cfg.Meta.Title != "Joe's Plumbing | plumbing in Austin, TX" {
		t.Errorf("meta title = %q", cfg.Meta.Title)
	}
	if cfg.Meta.Slug != "joes-plumbing" {
		t.Errorf("slug = %q", cfg.Meta.Slug)
	}
	if len(cfg.Meta.Description) > 160 {
		t.Errorf("meta description too long: %d chars", len(cfg.Meta.Description))
	}
	if len(cfg.Branding.Colors) != 2 || cfg.Branding.Tone != models.ToneProfessional {
		t.Errorf("branding = %+v", cfg.Branding)
	}
	if cfg.TemplateID != templates.IDServiceHeavy {
		t.Errorf("template id = %q", cfg.TemplateID)
	}
}

func TestGenerateHero(t *testing.T) {
	g := New(fixedClock)

	t.Run("value proposition becomes the headline", func(t *testing.T) {
		cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.Headline != "Fast, honest plumbing with upfront pricing." {
			t.Errorf("headline = %q", cfg.Hero.Headline)
		}
		if cfg.Hero.CTAText != "Call Us Today" {
			t.Errorf("cta = %q, want phone preference", cfg.Hero.CTAText)
		}
		if cfg.Hero.CTALink != "#contact" {
			t.Errorf("cta link = %q", cfg.Hero.CTALink)
		}
	})

	t.Run("long value proposition falls back to service line", func(t *testing.T) {
		bu := testProfile()
		bu.ValueProposition = strings.Repeat("very long proposition ", 10)
		cfg, err := g.Generate(bu, templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.Headline != "Professional drain cleaning Services You Can Trust" {
			t.Errorf("headline = %q", cfg.Hero.Headline)
		}
	})

	t.Run("booking preference wins the CTA", func(t *testing.T) {
		bu := testProfile()
		bu.ContactPrefs = models.ContactPreferences{Booking: true, Phone: true, Email: true}
		cfg, err := g.Generate(bu, templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.CTAText != "Book Now" || cfg.Hero.CTALink != "#booking" {
			t.Errorf("cta = %q -> %q", cfg.Hero.CTAText, cfg.Hero.CTALink)
		}
	})
}

func TestGenerateHeroImagePrecedence(t *testing.T) {
	g := New(fixedClock)

	t.Run("explicit assets first", func(t *testing.T) {
		bu := testProfile()
		bu.ImageAssets = &models.ImageAssets{Hero: "https://assets.example/hero.jpg"}
		scraped := &models.ScrapedData{Images: []string{"https://scraped.example/1.jpg"}}

		cfg, err := g.Generate(bu, templates.IDServiceHeavy, scraped)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.HeroImage != "https://assets.example/hero.jpg" {
			t.Errorf("hero image = %q", cfg.Hero.HeroImage)
		}
	})

	t.Run("scraped image second", func(t *testing.T) {
		scraped := &models.ScrapedData{Images: []string{"https://scraped.example/1.jpg"}}
		cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, scraped)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.HeroImage != "https://scraped.example/1.jpg" {
			t.Errorf("hero image = %q", cfg.Hero.HeroImage)
		}
	})

	t.Run("category stock default last", func(t *testing.T) {
		cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Hero.HeroImage == "" {
			t.Error("hero image must never be empty")
		}
	})
}

func TestGenerateServices(t *testing.T) {
	g := New(fixedClock)
	bu := testProfile()
	bu.ImageAssets = &models.ImageAssets{Gallery: []string{"g1.jpg", "g2.jpg"}}

	cfg, err := g.Generate(bu, templates.IDServiceHeavy, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(cfg.Services) != 4 {
		t.Fatalf("services = %d, want 4", len(cfg.Services))
	}
	if cfg.Services[0].Name != "drain cleaning" {
		t.Errorf("service name = %q", cfg.Services[0].Name)
	}
	if !strings.Contains(cfg.Services[0].Description, "drain cleaning") {
		t.Errorf("description should mention the service: %q", cfg.Services[0].Description)
	}
	// Gallery images round-robin across services.
	want := []string{"g1.jpg", "g2.jpg", "g1.jpg", "g2.jpg"}
	for i, item := range cfg.Services {
		if item.Image != want[i] {
			t.Errorf("services[%d].image = %q, want %q", i, item.Image, want[i])
		}
	}
}

func TestGenerateOptionalSections(t *testing.T) {
	g := New(fixedClock)

	t.Run("no features requested", func(t *testing.T) {
		cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Testimonials != nil || cfg.Contact != nil || cfg.Booking != nil || cfg.Gallery != nil || cfg.Pricing != nil {
			t.Error("no optional section should be present without a feature request")
		}
	})

	t.Run("requested features included", func(t *testing.T) {
		bu := testProfile()
		bu.DesiredFeatures = []string{"Testimonials", "contact form", "online booking", "photo gallery", "pricing table"}
		scraped := &models.ScrapedData{Email: "joe@example.com", Phone: "555-1234"}

		cfg, err := g.Generate(bu, templates.IDServiceHeavy, scraped)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Testimonials == nil || !cfg.Testimonials.Enabled {
			t.Error("testimonials missing")
		}
		if cfg.Contact == nil || cfg.Contact.Email != "joe@example.com" || !cfg.Contact.ShowPhone {
			t.Errorf("contact = %+v", cfg.Contact)
		}
		if cfg.Booking == nil || cfg.Booking.CTAText != "Book Now" {
			t.Errorf("booking = %+v", cfg.Booking)
		}
		if cfg.Gallery == nil {
			t.Error("gallery missing")
		}
		if cfg.Pricing == nil || !cfg.Pricing.Enabled {
			t.Error("pricing missing")
		}
	})

	t.Run("booking preference alone enables booking", func(t *testing.T) {
		bu := testProfile()
		bu.ContactPrefs.Booking = true

		cfg, err := g.Generate(bu, templates.IDServiceHeavy, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if cfg.Booking == nil || !cfg.Booking.Enabled {
			t.Error("booking section should follow the contact preference")
		}
		if cfg.Contact != nil {
			t.Error("contact section needs an explicit feature request")
		}
	})
}

func TestGenerateAboutAndSEO(t *testing.T) {
	g := New(fixedClock)
	cfg, err := g.Generate(testProfile(), templates.IDServiceHeavy, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	about := cfg.About.Content
	if !strings.Contains(about, "Fast, honest plumbing") {
		t.Errorf("about should open with the value proposition: %q", about)
	}
	if !strings.Contains(about, "Austin homeowners") {
		t.Errorf("about should mention the audience: %q", about)
	}
	// Only the top three trust signals are used.
	if strings.Contains(about, "BBB accredited") {
		t.Errorf("about should cap trust signals at three: %q", about)
	}

	seo := cfg.LocalSEO.Keywords
	assertContains := func(want string) {
		t.Helper()
		for _, k := range seo {
			if k == want {
				return
			}
		}
		t.Errorf("local seo missing %q: %v", want, seo)
	}
	assertContains("drain cleaning Austin, TX")
	assertContains("drain cleaning near me")
	assertContains("plumbing in Austin, TX")
	assertContains("best drain cleaning")
	assertContains("professional water heaters")

	if cfg.Footer.Text != "© Joe's Plumbing · Austin, TX" {
		t.Errorf("footer = %q", cfg.Footer.Text)
	}
}

func TestServiceDescriptionTones(t *testing.T) {
	tones := []models.BrandTone{
		models.ToneProfessional, models.ToneFriendly, models.ToneLuxury,
		models.ToneBold, models.ToneCasual,
	}

	seen := map[string]bool{}
	for _, tone := range tones {
		desc := serviceDescription(tone, "plumbing")
		if !strings.Contains(desc, "plumbing") {
			t.Errorf("tone %q: description missing service name: %q", tone, desc)
		}
		if seen[desc] {
			t.Errorf("tone %q produced duplicate copy", tone)
		}
		seen[desc] = true
	}

	// Unknown tone falls back to professional copy.
	if serviceDescription("mystery", "x") != serviceDescription(models.ToneProfessional, "x") {
		t.Error("unknown tone should use professional copy")
	}
}

func TestJoinNatural(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{in: nil, want: ""},
		{in: []string{"a"}, want: "a"},
		{in: []string{"a", "b"}, want: "a and b"},
		{in: []string{"a", "b", "c"}, want: "a, b, and c"},
	}
	for _, tt := range tests {
		if got := joinNatural(tt.in); got != tt.want {
			t.Errorf("joinNatural(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
