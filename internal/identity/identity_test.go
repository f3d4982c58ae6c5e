package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAPI(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"already canonical", "33-053-01234", "33-053-01234", true},
		{"bare digits", "3305301234", "33-053-01234", true},
		{"ocr noise between digits", "33.053·01234", "33-053-01234", true},
		{"nine digits", "330530123", "", false},
		{"eleven digits", "33053012345", "", false},
		{"empty", "", "", false},
		{"no digits at all", "pending", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.NormalizeAPI(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAPI_LettersAreStripped(t *testing.T) {
	n := New(DefaultConfig())

	// Letters count as non-digits, so OCR letter noise inside an otherwise
	// complete number still yields the canonical form.
	got, ok := n.NormalizeAPI("API No. 33o05a30x1234")
	require.True(t, ok)
	assert.Equal(t, "33-053-01234", got)
}

func TestNormalizeAPI_Idempotent(t *testing.T) {
	n := New(DefaultConfig())

	first, ok := n.NormalizeAPI("3305301234")
	require.True(t, ok)
	second, ok := n.NormalizeAPI(first)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestNormalizeWellName(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			"operator prefix stripped",
			"Oasis Petroleum North America LLC MAGNUM 2-36",
			"MAGNUM 2-36", true,
		},
		{
			"standard pattern with section block",
			"BERGSTROM FAMILY TRUST 5300 41-18H",
			"BERGSTROM FAMILY TRUST 5300 41-18H", true,
		},
		{
			"boilerplate then pattern",
			"Name RICHARD 34-6H",
			"RICHARD 34-6H", true,
		},
		{
			"hash marks removed",
			"MAGNUM #2-36",
			"MAGNUM 2-36", true,
		},
		{"job number refused", "S12345", "", false},
		{"nd job number refused", "ND980123", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{
			"no pattern falls back to cleaned remainder",
			"STATE UNIT WELL",
			"STATE UNIT WELL", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.NormalizeWellName(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeWellName_Idempotent(t *testing.T) {
	n := New(DefaultConfig())

	raws := []string{
		"Oasis Petroleum North America LLC MAGNUM 2-36",
		"BERGSTROM FAMILY TRUST 5300 41-18H",
		"Name RICHARD 34-6H",
		"STATE UNIT WELL",
	}
	for _, raw := range raws {
		first, ok := n.NormalizeWellName(raw)
		require.True(t, ok, raw)
		second, ok := n.NormalizeWellName(first)
		require.True(t, ok, first)
		assert.Equal(t, first, second)
	}
}

func TestNormalizeWellName_MultipleOperatorPrefixes(t *testing.T) {
	n := New(DefaultConfig())

	// The long "Oasis Petroleum North America LLC" entry does not match here,
	// so the shorter "Oasis Petroleum" form picks the prefix up instead.
	got, ok := n.NormalizeWellName("Oasis Petroleum SORENSON 5494 12-9T")
	require.True(t, ok)
	assert.Equal(t, "SORENSON 5494 12-9T", got)
}

func TestNormalizeWellName_CaseInsensitivePrefix(t *testing.T) {
	n := New(DefaultConfig())

	got, ok := n.NormalizeWellName("CONTINENTAL RESOURCES CAROLINE 5-21H")
	require.True(t, ok)
	assert.Equal(t, "CAROLINE 5-21H", got)
}
