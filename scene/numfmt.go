package scene

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v per spec.md §4.3's numeric-format rule: exact
// zero (of either sign) prints as "0"; magnitudes in [1e-4, 1e15) print
// in fixed notation with up to ten fractional digits, trailing zeros
// and a trailing decimal point stripped; everything else finite prints
// in general scientific notation with 15 significant digits. The rule
// is part of the output contract (spec.md §9), not a cosmetic choice —
// it is what makes unrelated-field diffs empty.
func FormatFloat(v float64) string {

	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-4 && abs < 1e15 {
		s := strconv.FormatFloat(v, 'f', 10, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		return s
	}
	return strconv.FormatFloat(v, 'e', 14, 64)
}

// ParseFloat parses s under a locale-independent decimal grammar: dot
// decimal separator, optional leading sign, optional exponent.
func ParseFloat(s string) (float64, error) {

	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// FormatInt renders an integer array/property value with no fractional
// part, locale-independent.
func FormatInt(v int64) string {

	return strconv.FormatInt(v, 10)
}

// ParseInt parses s as a locale-independent base-10 integer, accepting
// leading/trailing whitespace and an optional trailing 'L' suffix (the
// scene format's long-literal marker).
func ParseInt(s string) (int64, error) {

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "L")
	s = strings.TrimSuffix(s, "l")
	return strconv.ParseInt(s, 10, 64)
}
