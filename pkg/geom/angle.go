package geom

import (
	"strconv"
	"strings"

	"src.marq.sh/pkg/strutil"
)

// AngleUnit is a unit of angle.
type AngleUnit int

// Supported angle units. The zero value is Rad.
const (
	Rad AngleUnit = iota
	Deg
)

func (u AngleUnit) String() string {
	if u == Deg {
		return "deg"
	}
	return "rad"
}

// Angle is an angle, as written: a number and its unit. Like lengths, angles in
// different units are different values.
type Angle struct {
	value float64
	unit  AngleUnit
}

// Radians returns an angle of v radians.
func Radians(v float64) Angle { return Angle{v, Rad} }

// Degrees returns an angle of v degrees.
func Degrees(v float64) Angle { return Angle{v, Deg} }

// Equal reports whether two angles have the same number and unit.
func (a Angle) Equal(o Angle) bool {
	return a.value == o.value && a.unit == o.unit
}

// String returns the angle in its display unit, like "90.0deg".
func (a Angle) String() string {
	return strutil.FormatFloat(a.value) + a.unit.String()
}

// ParseAngle parses the form returned by (Angle).String.
func ParseAngle(s string) (Angle, error) {
	ctor := Radians
	num, ok := strings.CutSuffix(s, "rad")
	if !ok {
		num, ok = strings.CutSuffix(s, "deg")
		ctor = Degrees
	}
	if !ok {
		return Angle{}, cannotParse{"angle", s}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Angle{}, cannotParse{"angle", s}
	}
	return ctor(f), nil
}
