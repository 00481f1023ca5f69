// Package diag contains building blocks for locating values in source code and
// reporting diagnostics about them.
package diag

// Ranger wraps the Range method.
type Ranger interface {
	// Range returns the range associated with the value.
	Range() Ranging
}

// Ranging represents a byte range [From, To) within the source. Structs can
// embed Ranging to satisfy the [Ranger] interface.
type Ranging struct {
	From int
	To   int
}

// Range returns the Ranging itself.
func (r Ranging) Range() Ranging { return r }

// PointRanging returns a zero-width Ranging at the given point.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}

// MixedRanging returns a Ranging from the start position of a to the end
// position of b.
func MixedRanging(a, b Ranger) Ranging {
	return Ranging{a.Range().From, b.Range().To}
}

// Spanned is a value tagged with the source range it originates from.
type Spanned[T any] struct {
	V T
	Ranging
}

// Span tags v with the range of r.
func Span[T any](v T, r Ranger) Spanned[T] {
	return Spanned[T]{v, r.Range()}
}

// ZeroSpan tags v with the zero-width range at the start of the source.
func ZeroSpan[T any](v T) Spanned[T] {
	return Spanned[T]{V: v}
}

// MapSpanned applies f to the value of s, keeping the range.
func MapSpanned[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{f(s.V), s.Ranging}
}
