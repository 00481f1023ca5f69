// Package geom contains the measurement types of marq: lengths, angles,
// relative values and their combination.
//
// The types only carry what values need from them: construction, a canonical
// display form, parsing of that form and equality. Layout arithmetic lives
// elsewhere.
package geom

import (
	"fmt"
	"strconv"
	"strings"

	"src.marq.sh/pkg/strutil"
)

// LengthUnit is a unit of absolute length.
type LengthUnit int

// Supported length units. The zero value is Pt.
const (
	Pt LengthUnit = iota
	Mm
	Cm
	In
)

var lengthUnitNames = [...]string{Pt: "pt", Mm: "mm", Cm: "cm", In: "in"}

func (u LengthUnit) String() string {
	if int(u) < len(lengthUnitNames) {
		return lengthUnitNames[u]
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Length is an absolute length, as written: a number and the unit it was
// written in. Two lengths are only equal if both agree, so 1in and 72pt are
// different values.
type Length struct {
	value float64
	unit  LengthUnit
}

// LengthOf returns a length of v in the given unit.
func LengthOf(v float64, u LengthUnit) Length {
	return Length{v, u}
}

// Points returns a length of v points.
func Points(v float64) Length { return LengthOf(v, Pt) }

// Millimeters returns a length of v millimeters.
func Millimeters(v float64) Length { return LengthOf(v, Mm) }

// Centimeters returns a length of v centimeters.
func Centimeters(v float64) Length { return LengthOf(v, Cm) }

// Inches returns a length of v inches.
func Inches(v float64) Length { return LengthOf(v, In) }

// Equal reports whether two lengths have the same number and unit.
func (l Length) Equal(o Length) bool {
	return l.value == o.value && l.unit == o.unit
}

// String returns the length in its display unit, like "5.5pt".
func (l Length) String() string {
	return strutil.FormatFloat(l.value) + l.unit.String()
}

// ParseLength parses the form returned by (Length).String.
func ParseLength(s string) (Length, error) {
	for u, name := range lengthUnitNames {
		if num, ok := strings.CutSuffix(s, name); ok {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Length{}, cannotParse{"length", s}
			}
			return LengthOf(f, LengthUnit(u)), nil
		}
	}
	return Length{}, cannotParse{"length", s}
}

type cannotParse struct {
	what string
	s    string
}

func (err cannotParse) Error() string {
	return fmt.Sprintf("cannot parse as %s: %q", err.what, err.s)
}
