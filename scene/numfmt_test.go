package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat_Zero(t *testing.T) {

	assert.Equal(t, "0", FormatFloat(0))
	assert.Equal(t, "0", FormatFloat(-0.0))
}

func TestFormatFloat_FixedRange(t *testing.T) {

	assert.Equal(t, "1", FormatFloat(1))
	assert.Equal(t, "0.5", FormatFloat(0.5))
	assert.Equal(t, "-90", FormatFloat(-90))
	assert.Equal(t, "1.5", FormatFloat(1.5))
	assert.Equal(t, "0.0001", FormatFloat(0.0001))
}

func TestFormatFloat_StripsTrailingZerosNotSignificantOnes(t *testing.T) {

	assert.Equal(t, "1000000", FormatFloat(1000000))
	assert.Equal(t, "100.25", FormatFloat(100.25))
}

func TestFormatFloat_Scientific(t *testing.T) {

	s := FormatFloat(1e16)
	assert.Contains(t, s, "e+")

	s2 := FormatFloat(1e-8)
	assert.Contains(t, s2, "e-")
}

func TestParseFormatFloat_RoundTrip(t *testing.T) {

	for _, v := range []float64{0, 1, -1, 0.123456789, 90, -90, 1e-5, 1e20} {
		s := FormatFloat(v)
		parsed, err := ParseFloat(s)
		assert.NoError(t, err)
		assert.InDelta(t, v, parsed, 1e-9*maxAbs(1, v))
	}
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func TestParseInt_TrailingLSuffix(t *testing.T) {

	v, err := ParseInt("42L")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v2, err := ParseInt("-7")
	assert.NoError(t, err)
	assert.Equal(t, int64(-7), v2)
}
