package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Hello world", StripMarkup("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "plain text", StripMarkup("plain text"))
	assert.Equal(t, "", StripMarkup(""))
}

func TestStripMarkup_SkipsScriptAndStyle(t *testing.T) {
	in := `<html><head><style>.x{color:red}</style></head><body><script>var a=1;</script><div>Visible</div></body></html>`
	assert.Equal(t, "Visible", StripMarkup(in))
}

func TestStripMarkup_BlockBoundaries(t *testing.T) {
	in := "<div>MAGNUM</div><div>2-36</div>"
	assert.Equal(t, "MAGNUM 2-36", StripMarkup(in))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a\r\n\tb   c  "))
	assert.Equal(t, "", CollapseWhitespace("   "))
}

func TestStripArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dash runs", "well -- name ••• test", "well name test"},
		{"ocr symbols", "spud~date:=2011", "spud date 2011"},
		{"disallowed chars", "wéll *name*", "w ll name"},
		{"allowed punctuation kept", "Smith & Sons (op.) 50%", "Smith & Sons (op.) 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArtifacts(tt.in))
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_RoundTrip(t *testing.T) {
	// Already-sanitized text contains no markup, no noise symbols, and only
	// allow-listed characters; a second pass must return it unchanged.
	clean := Sanitize("<td>Oasis &amp; Sons\r\n MAGNUM #2-36 — Williams Co.</td>")
	assert.Equal(t, clean, Sanitize(clean))
}

func TestSanitize_OrderMatters(t *testing.T) {
	// Markup is stripped before artifact removal, so tag characters never
	// reach the noise pass.
	got := Sanitize("<span>48 hrs</span>")
	assert.Equal(t, "48 hrs", got)
}
