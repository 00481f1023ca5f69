package vals

import (
	"fmt"
	"reflect"
)

// Boxable is the set of capabilities a Go type needs to be held in a Dyn:
//
//   - a name, via the Type interface;
//   - a display form, via String;
//   - equality with another instance of the same type;
//   - cloning into an independent instance.
//
// A debug form is available for all Go types through the %#v verb of fmt.
type Boxable[T any] interface {
	Type
	fmt.Stringer
	Equal(T) bool
	Clone() T
}

// Dyn holds exactly one value of an arbitrary Go type satisfying Boxable. The
// concrete type is erased; the operations that depend on it are dispatched
// dynamically. The zero Dyn holds nothing and is only useful as a placeholder.
type Dyn struct {
	// A *T, so that DowncastRef can give out a view of the held value.
	ptr any
	vt  *dynVTable
}

// Operations on the erased *T held in a Dyn.
type dynVTable struct {
	typ     reflect.Type
	name    func() string
	load    func(ptr any) any
	equal   func(ptr any, other Dyn) bool
	clone   func(ptr any) Dyn
	display func(ptr any) string
}

// NewDyn returns a Dyn holding v.
func NewDyn[T Boxable[T]](v T) Dyn {
	return Dyn{&v, &dynVTable{
		typ:  typeOf[T](),
		name: v.TypeName,
		load: func(ptr any) any { return *ptr.(*T) },
		equal: func(ptr any, other Dyn) bool {
			o, ok := DowncastRef[T](other)
			return ok && (*ptr.(*T)).Equal(*o)
		},
		clone:   func(ptr any) Dyn { return NewDyn((*ptr.(*T)).Clone()) },
		display: func(ptr any) string { return (*ptr.(*T)).String() },
	}}
}

var boxers = map[reflect.Type]func(any) Dyn{}

// Register makes From box values of type T in a Dyn. It should only be called
// during initialization.
func Register[T Boxable[T]]() {
	boxers[typeOf[T]()] = func(v any) Dyn { return NewDyn(v.(T)) }
}

// Is reports whether d holds a T.
func Is[T any](d Dyn) bool {
	_, ok := d.ptr.(*T)
	return ok
}

// Downcast returns the value held in d and true if it has type T. Otherwise it
// returns the zero T and false; d is left untouched either way, so the caller
// may try other types.
func Downcast[T any](d Dyn) (T, bool) {
	if p, ok := d.ptr.(*T); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// DowncastRef returns a pointer to the value held in d and true if it has type
// T. The pointer must not be used to modify the value.
func DowncastRef[T any](d Dyn) (*T, bool) {
	p, ok := d.ptr.(*T)
	return p, ok
}

// TypeName returns the name declared by the type of the held value.
func (d Dyn) TypeName() string {
	if d.vt == nil {
		return KindAny.String()
	}
	return d.vt.name()
}

// Equal reports whether o holds a value of the same type as d, and the two
// values are equal. Values of different types are never equal.
func (d Dyn) Equal(o Dyn) bool {
	if d.vt == nil {
		return o.vt == nil
	}
	return d.vt.equal(d.ptr, o)
}

// Clone returns a new Dyn holding a clone of the held value.
func (d Dyn) Clone() Dyn {
	if d.vt == nil {
		return d
	}
	return d.vt.clone(d.ptr)
}

// String returns the display form of the held value.
func (d Dyn) String() string {
	if d.vt == nil {
		return "<empty>"
	}
	return d.vt.display(d.ptr)
}

// GoString returns the debug form of the held value.
func (d Dyn) GoString() string {
	if d.vt == nil {
		return "vals.Dyn{}"
	}
	return fmt.Sprintf("vals.Dyn{%#v}", d.vt.load(d.ptr))
}
