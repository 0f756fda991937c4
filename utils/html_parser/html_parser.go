package html_parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// SanitizeHTML strips unsafe tags and scripts but preserves structural HTML
// using bluemonday. Feed publishers embed arbitrary markup in item
// descriptions; everything stored must already be safe to render.
func SanitizeHTML(raw string) string {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "p", "span", "br", "ul", "ol", "li", "blockquote", "pre", "code", "b", "strong", "i", "em", "a")
	p.AllowAttrs("href").OnElements("a")

	return strings.TrimSpace(p.Sanitize(raw))
}

// ExtractText converts raw article HTML into normalized plain text. Payloads
// that contain no markup are passed through with whitespace normalized.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return normalizeWhitespace(stripTags(trimmed))
	}

	doc.Find("script, style, noscript, iframe").Remove()

	return normalizeWhitespace(doc.Text())
}

// WordCount counts whitespace-separated words in the plain-text rendering of
// the input. Used for reading-time estimation.
func WordCount(raw string) int {
	return len(strings.Fields(ExtractText(raw)))
}

func stripTags(raw string) string {
	return bluemonday.StrictPolicy().Sanitize(raw)
}

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
