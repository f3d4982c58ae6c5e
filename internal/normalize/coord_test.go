package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate_Decimal(t *testing.T) {
	v, ok := ParseCoordinate("-103.5")
	require.True(t, ok)
	assert.Equal(t, -103.5, v)

	v, ok = ParseCoordinate("48.0334")
	require.True(t, ok)
	assert.Equal(t, 48.0334, v)
}

func TestParseCoordinate_DMS(t *testing.T) {
	v, ok := ParseCoordinate(`48°02'00.22"N`)
	require.True(t, ok)
	assert.InDelta(t, 48.0334, v, 1e-3)

	v, ok = ParseCoordinate("103 30 00 W")
	require.True(t, ok)
	assert.InDelta(t, -103.5, v, 1e-9)
}

func TestParseCoordinate_DamagedTwoToken(t *testing.T) {
	// Degree mark collapsed into the first token.
	v, ok := ParseCoordinate("48.02 00.22 N")
	require.True(t, ok)
	assert.InDelta(t, 48.0334, v, 1e-3)

	// Seconds collapsed into a fractional suffix of the minutes token.
	v, ok = ParseCoordinate("48 2.37")
	require.True(t, ok)
	assert.InDelta(t, 48.0+2.0/60+22.2/3600, v, 1e-9)

	// Integral minutes, no seconds survived.
	v, ok = ParseCoordinate("48 30 N")
	require.True(t, ok)
	assert.InDelta(t, 48.5, v, 1e-9)
}

func TestParseCoordinate_TrailingWestNegates(t *testing.T) {
	for _, in := range []string{`103°30'00"W`, "103 30 00 W", "103.5 W"} {
		v, ok := ParseCoordinate(in)
		require.True(t, ok, in)
		assert.Negative(t, v, in)
	}
}

func TestParseCoordinate_Absent(t *testing.T) {
	for _, in := range []string{"", "   ", "unknown", "N/A"} {
		_, ok := ParseCoordinate(in)
		assert.False(t, ok, in)
	}
}
