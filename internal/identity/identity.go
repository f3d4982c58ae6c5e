// Package identity canonicalizes raw API numbers and well names lifted from
// OCR-damaged permit text. Raw name fields conflate operator names, form
// boilerplate, and the actual well designator; the normalizer peels known
// noise off in a fixed order before attempting structural extraction.
package identity

import (
	"regexp"
	"strings"
)

// Config carries the ordered prefix lists used during name cleanup. The lists
// are normalization behavior: changing them changes output and must be
// versioned alongside dataset expectations.
type Config struct {
	OperatorPrefixes    []string
	BoilerplatePrefixes []string
}

// DefaultConfig returns the prefix lists tuned for North Dakota permit
// extracts. More specific operator entries come before their short forms so a
// long prefix is consumed in one pass.
func DefaultConfig() Config {
	return Config{
		OperatorPrefixes: []string{
			"Oasis Petroleum North America LLC", "Oasis Petroleum",
			"Continental Resources Inc.", "Continental Resources",
			"Continental", "SM Energy", "RIM Operating",
			"Slawson Exploration Company, Inc.", "Slawson Exploration",
			"Versatile Energy", "Hill Electric, Inc",
			"NANCE PETROLEUM CORPORATION", "Oasis", "SM",
		},
		BoilerplatePrefixes: []string{
			"Spacing Unit Description", "Job #", "Otr-Otr", "Horizontal Well",
			"HORIZONTAL WELL", "Well Evaluation", "County swsw", "County",
			"Range County", "Range", "Address", "Permit", "Name",
		},
	}
}

// Structural well-name patterns, tried in order; first match wins.
var namePatterns = []*regexp.Regexp{
	// Standard wells: WORD WORD 5300 41-18H
	regexp.MustCompile(`[A-Za-z][A-Za-z &]*\s+\d{4}\s+\d{1,2}-\d{1,2}[A-Za-z]*`),
	// Wells without the 4-digit block: MAGNUM 2-36
	regexp.MustCompile(`[A-Za-z][A-Za-z &]*\s+\d{1,2}-\d{1,2}[A-Za-z]*`),
	// Salt water disposal wells
	regexp.MustCompile(`[A-Za-z][A-Za-z &]*SWD\s+\d{4}\s+\d{1,2}-\d{1,2}`),
	// Multi-section wells: 44-2412T
	regexp.MustCompile(`[A-Za-z][A-Za-z &]*\s+\d{4}\s+\d{2}-\d{2}\d{2}[A-Za-z]*`),
}

var (
	nonDigitRe  = regexp.MustCompile(`\D`)
	jobNumberRe = regexp.MustCompile(`^(S|ND)\d+`)
)

// Normalizer derives canonical identity from raw extract fields.
type Normalizer struct {
	operators   []string
	boilerplate []string
}

// New creates a Normalizer with the given prefix configuration.
func New(cfg Config) *Normalizer {
	return &Normalizer{
		operators:   cfg.OperatorPrefixes,
		boilerplate: cfg.BoilerplatePrefixes,
	}
}

// NormalizeAPI strips every non-digit character and, when exactly 10 digits
// remain, formats them as DD-DDD-DDDDD. Any other digit count reports false:
// absence is a valid outcome meaning the row cannot be enriched, not an error.
func (n *Normalizer) NormalizeAPI(raw string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return "", false
	}
	return digits[0:2] + "-" + digits[2:5] + "-" + digits[5:], true
}

// NormalizeWellName reduces a raw name field to the well designator. Stages
// run in order: operator prefix strip, boilerplate prefix strip, '#' removal,
// structural pattern extraction, job-number refusal. Applying it to its own
// output returns the same string.
func (n *Normalizer) NormalizeWellName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	for _, op := range n.operators {
		name = stripPrefixFold(name, op)
	}
	for _, p := range n.boilerplate {
		name = stripPrefixFold(name, p)
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, "#", ""))

	for _, re := range namePatterns {
		if m := re.FindString(name); m != "" {
			return strings.TrimSpace(m), true
		}
	}

	// Job-number shapes are unrecoverable garbage, not a name.
	if jobNumberRe.MatchString(name) {
		return "", false
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// stripPrefixFold removes a case-insensitive prefix and trims what remains.
func stripPrefixFold(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return strings.TrimSpace(s[len(prefix):])
	}
	return s
}
