// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import "strings"

// fallbackEntry pairs a category keyword with its curated stock set.
type fallbackEntry struct {
	keyword string
	set     []string
}

// categoryFallbacks maps business-category keywords to curated stock image
// sets. Lookup is a first-match substring scan in declaration order, so a
// compound category like "beauty salon" resolves to the same set on every
// call. Each set holds four landscape photos: hero first, gallery after.
var categoryFallbacks = []fallbackEntry{
	{"restaurant", []string{
		"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=1200&q=80",
		"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=1200&q=80",
		"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=1200&q=80",
		"https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?w=1200&q=80",
	}},
	{"cafe", []string{
		"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=1200&q=80",
		"https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=1200&q=80",
		"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=1200&q=80",
		"https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=1200&q=80",
	}},
	{"bakery", []string{
		"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=1200&q=80",
		"https://images.unsplash.com/photo-1517433670267-08bbd4be890f?w=1200&q=80",
		"https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=1200&q=80",
		"https://images.unsplash.com/photo-1486427944299-d1955d23e34d?w=1200&q=80",
	}},
	{"salon", []string{
		"https://images.unsplash.com/photo-1560066984-138dadb4c035?w=1200&q=80",
		"https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=1200&q=80",
		"https://images.unsplash.com/photo-1562322140-8baeececf3df?w=1200&q=80",
		"https://images.unsplash.com/photo-1633681926022-84c23e8cb2d6?w=1200&q=80",
	}},
	{"beauty", []string{
		"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=1200&q=80",
		"https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=1200&q=80",
		"https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=1200&q=80",
		"https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=1200&q=80",
	}},
	{"fitness", []string{
		"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=1200&q=80",
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=1200&q=80",
		"https://images.unsplash.com/photo-1540497077202-7c8a3999166f?w=1200&q=80",
		"https://images.unsplash.com/photo-1574680096145-d05b474e2155?w=1200&q=80",
	}},
	{"plumb", []string{
		"https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=1200&q=80",
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=80",
		"https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=1200&q=80",
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200&q=80",
	}},
	{"clean", []string{
		"https://images.unsplash.com/photo-1581578017093-cd30fce4eeb7?w=1200&q=80",
		"https://images.unsplash.com/photo-1584820927498-cfe5211fd8bf?w=1200&q=80",
		"https://images.unsplash.com/photo-1527515637462-cff94eecc1ac?w=1200&q=80",
		"https://images.unsplash.com/photo-1563453392212-326f5e854473?w=1200&q=80",
	}},
	{"landscap", []string{
		"https://images.unsplash.com/photo-1558904541-efa843a96f01?w=1200&q=80",
		"https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=1200&q=80",
		"https://images.unsplash.com/photo-1466692476868-aef1dfb1e735?w=1200&q=80",
		"https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=1200&q=80",
	}},
	{"consult", []string{
		"https://images.unsplash.com/photo-1556761175-5973dc0f32e7?w=1200&q=80",
		"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=1200&q=80",
		"https://images.unsplash.com/photo-1552664730-d307ca884978?w=1200&q=80",
		"https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=1200&q=80",
	}},
	{"legal", []string{
		"https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=1200&q=80",
		"https://images.unsplash.com/photo-1505664194779-8beaceb93744?w=1200&q=80",
		"https://images.unsplash.com/photo-1479142506502-19b3a3b7ff33?w=1200&q=80",
		"https://images.unsplash.com/photo-1521587760476-6c12a4b040da?w=1200&q=80",
	}},
	{"photo", []string{
		"https://images.unsplash.com/photo-1452587925148-ce544e77e70d?w=1200&q=80",
		"https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=1200&q=80",
		"https://images.unsplash.com/photo-1471341971476-ae15ff5dd4ea?w=1200&q=80",
		"https://images.unsplash.com/photo-1554048612-b6a482bc67e5?w=1200&q=80",
	}},
	{"real estate", []string{
		"https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=1200&q=80",
		"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1200&q=80",
		"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200&q=80",
		"https://images.unsplash.com/photo-1582407947304-fd86f028f716?w=1200&q=80",
	}},
	{"auto", []string{
		"https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=1200&q=80",
		"https://images.unsplash.com/photo-1625047509168-a7026f36de04?w=1200&q=80",
		"https://images.unsplash.com/photo-1632823471565-1ecdf5c6da05?w=1200&q=80",
		"https://images.unsplash.com/photo-1530046339160-ce3e530c7d2f?w=1200&q=80",
	}},
}

// defaultFallbacks is the generic set used when no category matches.
var defaultFallbacks = []string{
	"https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&q=80",
	"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=1200&q=80",
	"https://images.unsplash.com/photo-1556745757-8d76bdb6984b?w=1200&q=80",
	"https://images.unsplash.com/photo-1521737604893-d14cc237f11d?w=1200&q=80",
}

// FallbackSet returns the curated stock set for a category. Matching is a
// case-insensitive substring test so compound categories still resolve;
// the first keyword in catalog order wins.
func FallbackSet(category string) []string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	for _, entry := range categoryFallbacks {
		if strings.Contains(normalized, entry.keyword) {
			return entry.set
		}
	}
	return defaultFallbacks
}

// DefaultHero returns the lead stock image for a category. Used by the
// config generator when neither explicit assets nor scraped images exist.
func DefaultHero(category string) string {
	return FallbackSet(category)[0]
}
