package geom

import (
	"testing"

	"src.marq.sh/pkg/tt"
)

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("String", func(s interface{ String() string }) string { return s.String() }), tt.Table{
		tt.Args(Points(5.5)).Rets("5.5pt"),
		tt.Args(Centimeters(2)).Rets("2.0cm"),
		tt.Args(Millimeters(-1.25)).Rets("-1.25mm"),
		tt.Args(Inches(1)).Rets("1.0in"),
		tt.Args(Degrees(90)).Rets("90.0deg"),
		tt.Args(Radians(1.5)).Rets("1.5rad"),
		tt.Args(Relative(0.5)).Rets("50.0%"),
		tt.Args(Linear{Percent(30), Centimeters(2)}).Rets("30.0% + 2.0cm"),
	})
}

func TestParse(t *testing.T) {
	tt.Test(t, tt.Fn("ParseLength", ParseLength), tt.Table{
		tt.Args("5.5pt").Rets(Points(5.5), nil),
		tt.Args("2.0cm").Rets(Centimeters(2), nil),
		tt.Args("3in").Rets(Inches(3), nil),
		tt.Args("3").Rets(Length{}, cannotParse{"length", "3"}),
		tt.Args("xpt").Rets(Length{}, cannotParse{"length", "xpt"}),
	})
	tt.Test(t, tt.Fn("ParseAngle", ParseAngle), tt.Table{
		tt.Args("90.0deg").Rets(Degrees(90), nil),
		tt.Args("1rad").Rets(Radians(1), nil),
		tt.Args("1turn").Rets(Angle{}, cannotParse{"angle", "1turn"}),
	})
	tt.Test(t, tt.Fn("ParseRelative", ParseRelative), tt.Table{
		tt.Args("50.0%").Rets(Relative(0.5), nil),
		tt.Args("50").Rets(Relative(0), cannotParse{"relative", "50"}),
	})
	tt.Test(t, tt.Fn("ParseLinear", ParseLinear), tt.Table{
		tt.Args("50.0% + 1.0pt").Rets(Linear{Relative(0.5), Points(1)}, nil),
		tt.Args("1.0pt").Rets(Linear{}, cannotParse{"linear", "1.0pt"}),
	})
}

func TestEqual(t *testing.T) {
	tt.Test(t, tt.Fn("Length.Equal", Length.Equal), tt.Table{
		tt.Args(Points(1), Points(1)).Rets(true),
		tt.Args(Points(1), Points(2)).Rets(false),
		// The same distance written in another unit is a different length.
		tt.Args(Inches(1), Points(72)).Rets(false),
		tt.Args(Centimeters(1), Millimeters(10)).Rets(false),
	})
	tt.Test(t, tt.Fn("Angle.Equal", Angle.Equal), tt.Table{
		tt.Args(Degrees(180), Degrees(180)).Rets(true),
		tt.Args(Degrees(90), Radians(1)).Rets(false),
	})
	tt.Test(t, tt.Fn("Linear.Equal", Linear.Equal), tt.Table{
		tt.Args(LinearFromLength(Points(3)), Linear{Abs: Points(3)}).Rets(true),
		tt.Args(LinearFromRelative(Percent(10)), Linear{Rel: 0.1}).Rets(true),
		tt.Args(Linear{Percent(50), Centimeters(2.54)}, Linear{Percent(50), Inches(1)}).Rets(false),
	})
}

// Equal measurements must have the same display form.
func TestEqualImpliesSameString(t *testing.T) {
	lengths := []Length{
		Points(72), Inches(1), Centimeters(2.54), Millimeters(25.4), Points(0), Inches(0)}
	for _, a := range lengths {
		for _, b := range lengths {
			if a.Equal(b) && a.String() != b.String() {
				t.Errorf("%v and %v are equal but display differently", a, b)
			}
			la, lb := Linear{Percent(50), a}, Linear{Percent(50), b}
			if la.Equal(lb) && la.String() != lb.String() {
				t.Errorf("%v and %v are equal but display differently", la, lb)
			}
		}
	}
	angles := []Angle{Degrees(180), Radians(3.141592653589793), Degrees(0), Radians(0)}
	for _, a := range angles {
		for _, b := range angles {
			if a.Equal(b) && a.String() != b.String() {
				t.Errorf("%v and %v are equal but display differently", a, b)
			}
		}
	}
}
