package vals

import (
	"fmt"
	"math"
	"strconv"

	"src.marq.sh/pkg/markup"
	"src.marq.sh/pkg/strutil"
)

// Repr returns the canonical form of a value, used in diagnostics and when
// a value is interpolated into a document. Equal values have the same
// canonical form, with one exception: a number and its negative zero compare
// equal but render differently, like 0.0 and -0.0.
//
//	none                  None
//	true, false           Bool
//	12, 12.0, 12.4        Int and Float
//	5.5pt, 50.0%, #ff0000 measurements and colors, in their own form
//	"a\nb"                Str, quoted
//	(), (1,), (1, 2)      Array; a single element has a trailing comma
//	(:), (a: 1, b: 2)     Dict, in key order
//	[*Hi* there]          Template
//	(function len)        Func
//	(error)               Error
//
// A boxed value uses the display form of the boxed type.
func Repr(v Value) string {
	return ReprIndent(v, math.MinInt32)
}

// ReprIndent is like Repr, but if indent is at least 0, arrays and
// dictionaries are pretty-printed with one element per line, using indent as
// the current level of indentation.
func ReprIndent(v Value, indent int) string {
	switch p := v.payload.(type) {
	case nil:
		return "none"
	case bool:
		return strconv.FormatBool(p)
	case int64:
		return strconv.FormatInt(p, 10)
	case float64:
		return strutil.FormatFloat(p)
	case string:
		return strutil.Quote(p)
	case Array:
		b := newReprBuilder(indent)
		for _, elem := range p {
			b.writeElem(ReprIndent(elem, indent+1))
		}
		return b.listString()
	case Dict:
		b := newReprBuilder(indent)
		for _, k := range p.Keys() {
			b.writeElem(k + ": " + ReprIndent(p[k], indent+1))
		}
		return b.dictString()
	case markup.Tree:
		return "[" + p.Repr() + "]"
	case Func:
		return p.Repr()
	case fmt.Stringer:
		// Measurements, colors and Dyn.
		return p.String()
	case errorSentinel:
		return "(error)"
	default:
		return fmt.Sprintf("<unknown %v>", p)
	}
}
