// Package vals contains the dynamic values of marq and the protocol for
// converting them to Go types.
package vals

import (
	"fmt"
	"reflect"
	"sort"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
)

// Value is a marq value. It holds exactly one payload, whose Go type determines
// the variant:
//
//	None      nil (the zero Value)
//	Bool      bool
//	Int       int64
//	Float     float64
//	Length    geom.Length
//	Angle     geom.Angle
//	Relative  geom.Relative
//	Linear    geom.Linear
//	Color     color.Color
//	Str       string
//	Array     Array
//	Dict      Dict
//	Template  markup.Tree
//	Func      Func
//	Any       Dyn
//	Error     the error sentinel, see ErrorValue
//
// A Value exclusively owns its payload; use Clone to get an independent copy.
type Value struct {
	payload any
}

// Array is an ordered sequence of values.
type Array []Value

// Dict maps strings to values. Its keys are iterated in lexicographical order.
type Dict map[string]Value

type errorSentinel struct{}

var (
	// None is the value that indicates the absence of a meaningful value. It is
	// also the zero Value.
	None = Value{}
	// ErrorValue is the result of an invalid operation. It is stored, rendered
	// and propagated, but never produced by this package.
	ErrorValue = Value{errorSentinel{}}
)

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{f} }

// Length returns a length value.
func Length(l geom.Length) Value { return Value{l} }

// Angle returns an angle value.
func Angle(a geom.Angle) Value { return Value{a} }

// Relative returns a relative value.
func Relative(r geom.Relative) Value { return Value{r} }

// Linear returns a linear value.
func Linear(l geom.Linear) Value { return Value{l} }

// Color returns a color value.
func Color(c color.Color) Value { return Value{c} }

// Str returns a string value.
func Str(s string) Value { return Value{s} }

// Template returns a template value.
func Template(t markup.Tree) Value { return Value{t} }

// Box returns a value holding v in a Dyn.
func Box[T Boxable[T]](v T) Value { return Value{NewDyn(v)} }

// From converts a Go value to a Value.
//
// The payload types listed in the documentation of Value are stored directly,
// as well as Value itself. In addition, int is stored as int64, []Value and
// map[string]Value as Array and Dict, nil as None, and a diag.Spanned[Value]
// as its inner Value. Values of types registered with Register are boxed in a
// Dyn.
//
// From panics when given a value of any other type; this is always a
// programming error.
func From(x any) Value {
	switch x := x.(type) {
	case nil:
		return None
	case Value:
		return x
	case bool, int64, float64, string,
		geom.Length, geom.Angle, geom.Relative, geom.Linear, color.Color,
		Array, Dict, markup.Tree, Func, Dyn:
		return Value{x}
	case int:
		return Int(int64(x))
	case []Value:
		return Value{Array(x)}
	case map[string]Value:
		return Value{Dict(x)}
	case diag.Spanned[Value]:
		return x.V
	}
	if box, ok := boxers[reflect.TypeOf(x)]; ok {
		return Value{box(x)}
	}
	panic(fmt.Sprintf("vals.From: unsupported type %T", x))
}

// Payload returns the Go value held by v. It returns nil for None.
func (v Value) Payload() any {
	return v.payload
}

// IsNone reports whether v is None.
func (v Value) IsNone() bool {
	return v.payload == nil
}

// IsNumeric reports whether v is an integer, float, length, angle, relative
// or linear value.
func (v Value) IsNumeric() bool {
	switch v.payload.(type) {
	case int64, float64, geom.Length, geom.Angle, geom.Relative, geom.Linear:
		return true
	default:
		return false
	}
}

// Clone returns a copy of v that shares no mutable state with it. Arrays,
// dictionaries, templates and boxed values are copied deeply; functions share
// their implementation.
func (v Value) Clone() Value {
	switch p := v.payload.(type) {
	case Array:
		return Value{p.Clone()}
	case Dict:
		return Value{p.Clone()}
	case markup.Tree:
		return Value{p.Clone()}
	case Dyn:
		return Value{p.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and o are equal; see the Equal function.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}

// String returns the canonical form of v, as returned by Repr.
func (v Value) String() string {
	return Repr(v)
}

// GoString returns the debug form of v.
func (v Value) GoString() string {
	if d, ok := v.payload.(Dyn); ok {
		return "vals.Value{" + d.GoString() + "}"
	}
	return fmt.Sprintf("vals.Value{%s %s}", v.TypeName(), Repr(v))
}

// Clone returns a deep copy of the array.
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	c := make(Array, len(a))
	for i, v := range a {
		c[i] = v.Clone()
	}
	return c
}

// Clone returns a deep copy of the dictionary.
func (d Dict) Clone() Dict {
	if d == nil {
		return nil
	}
	c := make(Dict, len(d))
	for k, v := range d {
		c[k] = v.Clone()
	}
	return c
}

// Keys returns the keys of the dictionary in lexicographical order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
