package strutil

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat formats a float64 using the shortest decimal representation that
// round-trips, always keeping a fractional part for finite values, so that 2
// is formatted as "2.0".
//
// Very large or very small numbers use scientific notation.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(s, "0.0000") || strings.HasPrefix(s, "-0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	} else if noPoint && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return s + ".0"
	}
	return s
}
