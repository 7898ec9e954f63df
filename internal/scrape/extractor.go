// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scrape turns raw page markup into a flat ScrapedData record.
// Extraction is a pure function over the markup: no network access, no
// state, and every output field is optional.
package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"sitesmith/internal/models"
)

const (
	maxImages         = 10
	maxHeadings       = 5
	maxHeadingLen     = 200
	maxDescriptionLen = 300
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\+?[0-9][0-9()\s.\-]{5,18}[0-9]`)
	cssURL       = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)`)

	// skipSubstrings mark image URLs that are almost certainly icons or
	// tracking pixels rather than content photos.
	skipSubstrings = []string{"icon", "logo", "favicon", "1x1", "pixel"}
)

// Extract parses markup into a ScrapedData record, resolving image URLs
// against baseURL. Script, style, and noscript contents are discarded
// before any text analysis.
func Extract(markup, baseURL string) models.ScrapedData {
	var data models.ScrapedData

	st := &walkState{base: strings.TrimRight(baseURL, "/")}
	z := html.NewTokenizer(strings.NewReader(markup))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF or malformed tail; either way, keep what we have.
			st.finish(&data)
			return data
		case html.StartTagToken:
			st.startTag(tokenOf(z))
		case html.SelfClosingTagToken:
			st.voidTag(tokenOf(z))
		case html.EndTagToken:
			name, _ := z.TagName()
			st.endTag(string(name))
		case html.TextToken:
			st.text(string(z.Text()))
		}
	}
}

func tokenOf(z *html.Tokenizer) html.Token {
	return z.Token()
}

// walkState accumulates extraction results during a single token walk.
type walkState struct {
	base string

	skipDepth int // >0 while inside script/style/noscript

	inTitle     bool
	headingTag  string
	inParagraph bool

	title       strings.Builder
	heading     strings.Builder
	paragraph   strings.Builder
	visibleText strings.Builder

	gotTitle     bool
	firstH1      string
	metaDesc     string
	ogDesc       string
	firstPara    string
	headings     []string
	images       []string
	seenImages   map[string]bool
}

func (s *walkState) startTag(t html.Token) {
	switch t.Data {
	case "script", "style", "noscript":
		s.skipDepth++
		return
	}
	if s.skipDepth > 0 {
		return
	}

	switch t.Data {
	case "title":
		if !s.gotTitle {
			s.inTitle = true
			s.title.Reset()
		}
	case "h1", "h2", "h3":
		s.headingTag = t.Data
		s.heading.Reset()
	case "p":
		if s.firstPara == "" {
			s.inParagraph = true
			s.paragraph.Reset()
		}
	case "img":
		s.collectImg(t)
	case "meta":
		s.collectMeta(t)
	}

	s.collectBackground(t)
}

// voidTag handles self-closing tags, which never produce an end token.
func (s *walkState) voidTag(t html.Token) {
	if s.skipDepth > 0 {
		return
	}
	switch t.Data {
	case "img":
		s.collectImg(t)
	case "meta":
		s.collectMeta(t)
	}
	s.collectBackground(t)
}

func (s *walkState) endTag(name string) {
	switch name {
	case "script", "style", "noscript":
		if s.skipDepth > 0 {
			s.skipDepth--
		}
		return
	}
	if s.skipDepth > 0 {
		return
	}

	switch name {
	case "title":
		if s.inTitle {
			s.inTitle = false
			s.gotTitle = true
		}
	case "h1", "h2", "h3":
		if s.headingTag == name {
			text := collapseSpace(s.heading.String())
			if name == "h1" && s.firstH1 == "" {
				s.firstH1 = text
			}
			if text != "" && len(text) < maxHeadingLen && len(s.headings) < maxHeadings {
				s.headings = append(s.headings, text)
			}
			s.headingTag = ""
		}
	case "p":
		if s.inParagraph {
			s.inParagraph = false
			if text := collapseSpace(s.paragraph.String()); text != "" {
				s.firstPara = truncate(text, maxDescriptionLen)
			}
		}
	}
}

func (s *walkState) text(raw string) {
	if s.skipDepth > 0 {
		return
	}
	if s.inTitle {
		s.title.WriteString(raw)
	}
	if s.headingTag != "" {
		s.heading.WriteString(raw)
	}
	if s.inParagraph {
		s.paragraph.WriteString(raw)
	}
	s.visibleText.WriteString(raw)
	s.visibleText.WriteByte(' ')
}

func (s *walkState) collectMeta(t html.Token) {
	var name, property, content string
	for _, a := range t.Attr {
		switch a.Key {
		case "name":
			name = strings.ToLower(a.Val)
		case "property":
			property = strings.ToLower(a.Val)
		case "content":
			content = strings.TrimSpace(a.Val)
		}
	}
	switch {
	case name == "description" && s.metaDesc == "":
		s.metaDesc = content
	case property == "og:description" && s.ogDesc == "":
		s.ogDesc = content
	}
}

func (s *walkState) collectImg(t html.Token) {
	var src string
	var width, height int
	for _, a := range t.Attr {
		switch a.Key {
		case "src", "data-src", "data-lazy-src":
			if src == "" {
				src = strings.TrimSpace(a.Val)
			}
		case "width":
			width = pixelValue(a.Val)
		case "height":
			height = pixelValue(a.Val)
		}
	}
	// Explicitly tiny images are icons, not content.
	if (width > 0 && width < 100) || (height > 0 && height < 100) {
		return
	}
	s.addImage(src)
}

// collectBackground picks CSS background images out of inline styles.
func (s *walkState) collectBackground(t html.Token) {
	for _, a := range t.Attr {
		if a.Key != "style" || !strings.Contains(a.Val, "background") {
			continue
		}
		for _, m := range cssURL.FindAllStringSubmatch(a.Val, -1) {
			s.addImage(strings.TrimSpace(m[1]))
		}
	}
}

func (s *walkState) addImage(raw string) {
	if raw == "" || len(s.images) >= maxImages {
		return
	}
	resolved := resolveImageURL(raw, s.base)
	if resolved == "" {
		return
	}
	lower := strings.ToLower(resolved)
	for _, skip := range skipSubstrings {
		if strings.Contains(lower, skip) {
			return
		}
	}
	if s.seenImages == nil {
		s.seenImages = make(map[string]bool)
	}
	if s.seenImages[resolved] {
		return
	}
	s.seenImages[resolved] = true
	s.images = append(s.images, resolved)
}

func (s *walkState) finish(data *models.ScrapedData) {
	if t := collapseSpace(s.title.String()); t != "" {
		data.Title = t
	} else if s.firstH1 != "" {
		data.Title = s.firstH1
	}

	switch {
	case s.metaDesc != "":
		data.Description = truncate(s.metaDesc, maxDescriptionLen)
	case s.ogDesc != "":
		data.Description = truncate(s.ogDesc, maxDescriptionLen)
	case s.firstPara != "":
		data.Description = s.firstPara
	}

	visible := s.visibleText.String()
	data.Email = emailPattern.FindString(visible)
	data.Phone = findPhone(visible)
	data.Images = s.images
	data.Headings = s.headings
}

// findPhone returns the first loose phone match with at least seven digits,
// filtering out short numeric runs like years or prices.
func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, 10) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// resolveImageURL turns relative, root-relative, and protocol-relative
// references into absolute URLs against the page base.
func resolveImageURL(raw, base string) string {
	switch {
	case strings.HasPrefix(raw, "data:"):
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return siteOrigin(base) + raw
	case base != "":
		return base + "/" + raw
	default:
		return ""
	}
}

// siteOrigin reduces a base URL to scheme://host.
func siteOrigin(base string) string {
	rest := base
	scheme := ""
	if i := strings.Index(base, "://"); i != -1 {
		scheme = base[:i+3]
		rest = base[i+3:]
	}
	if i := strings.IndexByte(rest, '/'); i != -1 {
		rest = rest[:i]
	}
	return scheme + rest
}

func pixelValue(v string) int {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
