package vals

import (
	"reflect"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
)

// Conversion from marq values to Go values.
//
// A Value is converted to a Go type T with Cast[T]. The conversion succeeds if
// the payload is already a T, or if a coercion to T has been declared for the
// type of the payload. Coercions are either registered in a table with
// RegisterCoercion, or declared by T itself by implementing Coercible. When the
// payload is a Dyn, the boxed value is tried in the same way.
//
// Conversion never panics and never loses the value: when it fails, the
// original Value is handed back in the result.

// Outcome is the outcome of a cast.
type Outcome int

// Possible values of Outcome.
const (
	// The value was cast successfully.
	CastOk Outcome = iota
	// The value was cast successfully, but the caller should show a warning.
	CastWarn
	// The value could not be cast.
	CastErr
)

// CastResult is the result of casting a value of type V to type T.
type CastResult[T, V any] struct {
	Outcome Outcome
	// The converted value. Valid when Outcome is CastOk or CastWarn.
	Value T
	// The warning message. Only set when Outcome is CastWarn.
	Message string
	// The original value. Only set when Outcome is CastErr.
	Original V
}

// Ok returns the converted value and whether the cast succeeded, discarding
// any warning.
func (r CastResult[T, V]) Ok() (T, bool) {
	return r.Value, r.Outcome != CastErr
}

// Warning returns the warning message and whether there is one.
func (r CastResult[T, V]) Warning() (string, bool) {
	return r.Message, r.Outcome == CastWarn
}

// Err returns the original value and whether the cast failed.
func (r CastResult[T, V]) Err() (V, bool) {
	return r.Original, r.Outcome == CastErr
}

func castOk[T, V any](t T) CastResult[T, V] {
	return CastResult[T, V]{Outcome: CastOk, Value: t}
}

func castErr[T, V any](v V) CastResult[T, V] {
	return CastResult[T, V]{Outcome: CastErr, Original: v}
}

// Type is implemented by Go types that can be held in values, to declare the
// name used for them in diagnostics.
type Type interface {
	TypeName() string
}

// Coercible is implemented by Go types that accept values of other types.
// The coercions are tried in order.
type Coercible interface {
	CastFrom() []Coercion
}

// Coercion is a declared conversion from one Go type to another.
type Coercion struct {
	from reflect.Type
	to   reflect.Type
	conv func(any) (any, string)
}

// CoerceFrom returns a Coercion from S to T.
func CoerceFrom[S, T any](f func(S) T) Coercion {
	return CoerceFromWarn(func(s S) (T, string) { return f(s), "" })
}

// CoerceFromWarn returns a Coercion from S to T that may produce a warning. A
// non-empty message turns the outcome of the cast into CastWarn.
func CoerceFromWarn[S, T any](f func(S) (T, string)) Coercion {
	return Coercion{typeOf[S](), typeOf[T](), func(s any) (any, string) {
		return f(s.(S))
	}}
}

func (c Coercion) apply(s any) (any, Outcome, string) {
	t, msg := c.conv(s)
	if msg != "" {
		return t, CastWarn, msg
	}
	return t, CastOk, ""
}

var coercions = map[reflect.Type][]Coercion{}

// RegisterCoercion adds a coercion to the table consulted by Cast. Coercions to
// the same type are tried in the order they are registered, before those
// declared with Coercible. It should only be called during initialization.
func RegisterCoercion(c Coercion) {
	coercions[c.to] = append(coercions[c.to], c)
}

func init() {
	RegisterCoercion(CoerceFrom(func(i int64) float64 { return float64(i) }))
	RegisterCoercion(CoerceFrom(geom.LinearFromLength))
	RegisterCoercion(CoerceFrom(geom.LinearFromRelative))
}

// Cast converts v to T. It tries, in order:
//
//  1. If T is Value, v itself.
//  2. The payload of v, if it has type T.
//  3. Coercions to T from the type of the payload.
//  4. If the payload is a Dyn, the boxed value if it has type T, then
//     coercions to T from the type of the boxed value.
//
// If none applies, the result has outcome CastErr and holds v.
func Cast[T any](v Value) CastResult[T, Value] {
	if t, ok := any(v).(T); ok {
		return castOk[T, Value](t)
	}
	if t, ok := v.payload.(T); ok {
		return castOk[T, Value](t)
	}
	if v.payload == nil {
		return castErr[T](v)
	}

	src, srcType := v.payload, reflect.TypeOf(v.payload)
	if d, ok := v.payload.(Dyn); ok {
		if d.vt == nil {
			return castErr[T](v)
		}
		if t, ok := Downcast[T](d); ok {
			return castOk[T, Value](t)
		}
		src, srcType = d.vt.load(d.ptr), d.vt.typ
	}
	for _, c := range coercionsTo[T]() {
		if c.from == srcType {
			t, outcome, msg := c.apply(src)
			val, _ := t.(T)
			return CastResult[T, Value]{Outcome: outcome, Value: val, Message: msg}
		}
	}
	return castErr[T](v)
}

func coercionsTo[T any]() []Coercion {
	cs := coercions[typeOf[T]()]
	var zero T
	if c, ok := any(zero).(Coercible); ok {
		cs = append(cs[:len(cs):len(cs)], c.CastFrom()...)
	}
	return cs
}

// CastSpanned is like Cast, but keeps the range of the input on both the
// converted value and the original value.
func CastSpanned[T any](v diag.Spanned[Value]) CastResult[diag.Spanned[T], diag.Spanned[Value]] {
	r := Cast[T](v.V)
	switch r.Outcome {
	case CastErr:
		return castErr[diag.Spanned[T]](v)
	default:
		return CastResult[diag.Spanned[T], diag.Spanned[Value]]{
			Outcome: r.Outcome, Value: diag.Span(r.Value, v), Message: r.Message}
	}
}

// CastUnspanned is like CastSpanned, but drops the range from the converted
// value. The original value keeps its range when the cast fails.
func CastUnspanned[T any](v diag.Spanned[Value]) CastResult[T, diag.Spanned[Value]] {
	r := Cast[T](v.V)
	if r.Outcome == CastErr {
		return castErr[T](v)
	}
	return CastResult[T, diag.Spanned[Value]]{Outcome: r.Outcome, Value: r.Value, Message: r.Message}
}

var typeNames = map[reflect.Type]string{
	typeOf[Value]():         "value",
	typeOf[bool]():          KindBool.String(),
	typeOf[int64]():         KindInt.String(),
	typeOf[float64]():       KindFloat.String(),
	typeOf[geom.Length]():   KindLength.String(),
	typeOf[geom.Angle]():    KindAngle.String(),
	typeOf[geom.Relative](): KindRelative.String(),
	typeOf[geom.Linear]():   KindLinear.String(),
	typeOf[color.Color]():   KindColor.String(),
	typeOf[string]():        KindStr.String(),
	typeOf[Array]():         KindArray.String(),
	typeOf[Dict]():          KindDict.String(),
	typeOf[markup.Tree]():   KindTemplate.String(),
	typeOf[Func]():          KindFunc.String(),
	typeOf[Dyn]():           KindAny.String(),
}

// TypeNameOf returns the name of the Go type T as used in diagnostics. Types
// that implement Type use their own name; other types not known to this
// package use the Go type name.
func TypeNameOf[T any]() string {
	t := typeOf[T]()
	if name, ok := typeNames[t]; ok {
		return name
	}
	var zero T
	if ty, ok := any(zero).(Type); ok {
		return ty.TypeName()
	}
	return t.String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
