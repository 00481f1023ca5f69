package vals

import (
	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
)

// Kind identifies the variant of a Value.
type Kind int

// Possible values of Kind.
const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindLength
	KindAngle
	KindRelative
	KindLinear
	KindColor
	KindStr
	KindArray
	KindDict
	KindTemplate
	KindFunc
	KindAny
	KindError
)

var kindNames = [...]string{
	KindNone:     "none",
	KindBool:     "boolean",
	KindInt:      "integer",
	KindFloat:    "float",
	KindLength:   "length",
	KindAngle:    "angle",
	KindRelative: "relative",
	KindLinear:   "linear",
	KindColor:    "color",
	KindStr:      "string",
	KindArray:    "array",
	KindDict:     "dictionary",
	KindTemplate: "template",
	KindFunc:     "function",
	KindAny:      "any",
	KindError:    "error",
}

// String returns the type name of values of the kind. For KindAny, whose
// values carry their own type names, it returns "any".
func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	switch v.payload.(type) {
	case nil:
		return KindNone
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case geom.Length:
		return KindLength
	case geom.Angle:
		return KindAngle
	case geom.Relative:
		return KindRelative
	case geom.Linear:
		return KindLinear
	case color.Color:
		return KindColor
	case string:
		return KindStr
	case Array:
		return KindArray
	case Dict:
		return KindDict
	case markup.Tree:
		return KindTemplate
	case Func:
		return KindFunc
	case Dyn:
		return KindAny
	default:
		return KindError
	}
}

// TypeName returns the name of the type of v, like "integer" or "dictionary".
// For a boxed value, it is the name declared by the boxed type.
func (v Value) TypeName() string {
	if d, ok := v.payload.(Dyn); ok {
		return d.TypeName()
	}
	return v.Kind().String()
}
