package geom

import (
	"math"
	"strconv"
	"strings"

	"src.marq.sh/pkg/strutil"
)

// Relative is a value relative to some base, with 1.0 meaning the whole base.
// It is displayed as a percentage.
type Relative float64

// Percent returns v percent as a Relative.
func Percent(v float64) Relative { return Relative(v / 100) }

// String returns the relative value as a percentage, like "50.0%".
func (r Relative) String() string {
	// Round away the error introduced by scaling, so that 0.3 shows as 30.0%.
	percent := math.Round(float64(r)*100*1e9) / 1e9
	return strutil.FormatFloat(percent) + "%"
}

// ParseRelative parses the form returned by (Relative).String.
func ParseRelative(s string) (Relative, error) {
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, cannotParse{"relative", s}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, cannotParse{"relative", s}
	}
	return Percent(f), nil
}
