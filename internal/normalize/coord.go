package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dmsPunctRe = regexp.MustCompile("[°º'′’‘\"″”“`´]+")
	numTokenRe = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
)

// ParseCoordinate converts a raw coordinate to signed decimal degrees. Source
// values arrive as clean decimals, well-formed DMS, or OCR-damaged DMS where
// a separator collapsed into a decimal point; the shape is disambiguated
// purely from token count and surviving punctuation.
// A hemisphere letter S or W anywhere in the raw string negates the result.
func ParseCoordinate(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	// Clean decimal, sign preserved.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	cleaned := dmsPunctRe.ReplaceAllString(s, " ")
	tokens := numTokenRe.FindAllString(cleaned, -1)
	if len(tokens) == 0 {
		return 0, false
	}

	var deg float64
	switch {
	case len(tokens) >= 3:
		deg = tokenFloat(tokens[0]) + tokenFloat(tokens[1])/60 + tokenFloat(tokens[2])/3600
	case len(tokens) == 2:
		deg = reconstructDamagedDMS(tokens[0], tokens[1])
	default:
		// Lone numeric token with a hemisphere suffix, e.g. "103.5 W".
		deg = tokenFloat(tokens[0])
	}

	if strings.ContainsAny(s, "SsWw") {
		deg = -deg
	}
	return deg, true
}

// reconstructDamagedDMS rebuilds degrees from a two-token DMS string whose
// separators were lost to OCR. Which field collapsed is inferred from where
// the decimal point survived. This is a heuristic reconstruction with no
// independent verification possible from the source data alone.
func reconstructDamagedDMS(first, second string) float64 {
	if i := strings.IndexByte(first, '.'); i >= 0 {
		// "48.02 00.22": the degree mark collapsed into the first token, so
		// its fractional digits are the minutes and the second token holds
		// the seconds.
		d := tokenFloat(first[:i])
		m := tokenFloat(first[i+1:])
		return d + m/60 + tokenFloat(second)/3600
	}

	d := tokenFloat(first)
	if i := strings.IndexByte(second, '.'); i >= 0 {
		// "48 02.0022": the seconds collapsed into a fractional suffix of
		// the minutes token.
		m := tokenFloat(second[:i])
		sec := tokenFloat("0"+second[i:]) * 60
		return d + m/60 + sec/3600
	}
	return d + tokenFloat(second)/60
}

func tokenFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
