package geom

import "strings"

// Linear is the sum of a relative value and an absolute length, like
// "30.0% + 2.0cm".
type Linear struct {
	Rel Relative
	Abs Length
}

// LinearFromLength converts a length to a Linear with no relative part.
func LinearFromLength(l Length) Linear { return Linear{Abs: l} }

// LinearFromRelative converts a relative value to a Linear with no absolute
// part.
func LinearFromRelative(r Relative) Linear { return Linear{Rel: r} }

// Equal reports whether two linear values have equal parts.
func (l Linear) Equal(o Linear) bool {
	return l.Rel == o.Rel && l.Abs.Equal(o.Abs)
}

// String returns the two parts joined by " + ".
func (l Linear) String() string {
	return l.Rel.String() + " + " + l.Abs.String()
}

// ParseLinear parses the form returned by (Linear).String.
func ParseLinear(s string) (Linear, error) {
	rel, abs, ok := strings.Cut(s, " + ")
	if !ok {
		return Linear{}, cannotParse{"linear", s}
	}
	r, err := ParseRelative(rel)
	if err != nil {
		return Linear{}, cannotParse{"linear", s}
	}
	l, err := ParseLength(abs)
	if err != nil {
		return Linear{}, cannotParse{"linear", s}
	}
	return Linear{r, l}, nil
}
