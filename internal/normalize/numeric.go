package normalize

import (
	"strconv"
	"strings"
	"time"
)

// ParseProduction converts a raw production display value like "1.7 k" to a
// unit-less magnitude (suffix "k" scales by 1000). Missing or unparseable
// values yield 0. Zero doubles as the "no data" sentinel; it is not
// distinguishable from a true zero reading.
func ParseProduction(raw string) float64 {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "n/a", "na", "none":
		return 0
	}

	if strings.Contains(v, "k") {
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, "k", "")), 64)
		if err != nil {
			return 0
		}
		return f * 1000
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatProduction renders a parsed production magnitude for the output
// dataset.
func FormatProduction(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Date layouts tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// ParseDate parses a raw date string best-effort. Empty or unparseable input
// reports false with the zero time, the explicit invalid marker.
func ParseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "n/a") {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a parsed date as ISO 8601, or "" for the invalid marker.
func FormatDate(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
