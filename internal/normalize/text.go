// Package normalize converts raw extract fields (free text, production
// figures, dates, geocoordinates) into their canonical forms. Every function
// is total: unparseable input degrades to a documented sentinel, never an
// error.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	controlRunRe = regexp.MustCompile(`[\r\n\t]+`)
	spaceRunRe   = regexp.MustCompile(`\s+`)

	// Runs of OCR noise symbols become a single space.
	artifactRunRe = regexp.MustCompile("[_\\-–—•·…:;=~`^]+")
	// Anything outside the allow-list is noise.
	disallowedRe = regexp.MustCompile(`[^0-9A-Za-z.,;:()&/%$#@!?\s'-]`)
)

// Sanitize runs the three cleanup passes in order: markup strip, whitespace
// normalize, artifact strip. Markup must go first or its characters would be
// misclassified as OCR noise. Empty input stays empty.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return StripArtifacts(CollapseWhitespace(StripMarkup(raw)))
}

// StripMarkup parses the value as HTML and returns its visible text, with a
// single space between text nodes. Plain text passes through trimmed.
func StripMarkup(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String()
}

// CollapseWhitespace folds control-character runs and whitespace runs into
// single spaces and trims the ends.
func CollapseWhitespace(s string) string {
	s = controlRunRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripArtifacts removes OCR noise: symbol runs become one space, then any
// character outside the allow-list is dropped, then whitespace is
// re-collapsed. Already-clean text passes through unchanged.
func StripArtifacts(s string) string {
	s = norm.NFKC.String(s)
	s = artifactRunRe.ReplaceAllString(s, " ")
	s = disallowedRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
