package vals

import (
	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
)

// Equal returns whether two values are equal.
//
// Values of different variants are never equal; in particular Int(1) and
// Float(1) are not. Lengths, angles and linear values compare their number
// and unit, so 1in and 72pt are different values. Arrays and dictionaries
// compare their elements, and boxed values use the equality of the boxed type.
// Functions are never equal to anything, not even to themselves.
func Equal(x, y Value) bool {
	switch a := x.payload.(type) {
	case nil:
		return y.payload == nil
	case bool, int64, float64, string, geom.Relative, color.Color, errorSentinel:
		return x.payload == y.payload
	case geom.Length:
		b, ok := y.payload.(geom.Length)
		return ok && a.Equal(b)
	case geom.Angle:
		b, ok := y.payload.(geom.Angle)
		return ok && a.Equal(b)
	case geom.Linear:
		b, ok := y.payload.(geom.Linear)
		return ok && a.Equal(b)
	case Array:
		b, ok := y.payload.(Array)
		return ok && a.Equal(b)
	case Dict:
		b, ok := y.payload.(Dict)
		return ok && a.Equal(b)
	case markup.Tree:
		b, ok := y.payload.(markup.Tree)
		return ok && a.Equal(b)
	case Func:
		return false
	case Dyn:
		b, ok := y.payload.(Dyn)
		return ok && a.Equal(b)
	default:
		return false
	}
}

// Equal reports whether two arrays have equal elements in the same order.
func (a Array) Equal(b Array) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two dictionaries have the same keys mapped to equal
// values.
func (d Dict) Equal(o Dict) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		ov, ok := o[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}
