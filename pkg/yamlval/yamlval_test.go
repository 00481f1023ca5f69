package yamlval

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
	"src.marq.sh/pkg/tt"
)

func decodeString(s string) (vals.Value, error) {
	return Decode([]byte(s))
}

func TestDecode(t *testing.T) {
	tt.Test(t, tt.Fn("Decode", decodeString), tt.Table{
		tt.Args("").Rets(vals.None, nil),
		tt.Args("null").Rets(vals.None, nil),
		tt.Args("true").Rets(vals.Bool(true), nil),
		tt.Args("42").Rets(vals.Int(42), nil),
		tt.Args("0x10").Rets(vals.Int(16), nil),
		tt.Args("12.4").Rets(vals.Float(12.4), nil),
		tt.Args("hello").Rets(vals.Str("hello"), nil),
		tt.Args(`"42"`).Rets(vals.Str("42"), nil),
		tt.Args("2001-12-14").Rets(vals.Str("2001-12-14"), nil),
		tt.Args("!length 5.5pt").Rets(vals.Length(geom.Points(5.5)), nil),
		tt.Args("!angle 90deg").Rets(vals.Angle(geom.Degrees(90)), nil),
		tt.Args("!relative 50%").Rets(vals.Relative(0.5), nil),
		tt.Args("!linear 30% + 2cm").Rets(
			vals.Linear(geom.Linear{Rel: 0.3, Abs: geom.Centimeters(2)}), nil),
		tt.Args(`!color "#f79143"`).Rets(vals.Color(color.RGB(0xf7, 0x91, 0x43)), nil),
		tt.Args("!error").Rets(vals.ErrorValue, nil),
		tt.Args("[1, two]").Rets(vals.From(vals.Array{vals.Int(1), vals.Str("two")}), nil),
		tt.Args("{b: 1, a: [none]}").Rets(vals.From(vals.Dict{
			"b": vals.Int(1), "a": vals.From(vals.Array{vals.Str("none")})}), nil),
		tt.Args("a: &x 1\nb: *x").Rets(vals.From(vals.Dict{"a": vals.Int(1), "b": vals.Int(1)}), nil),
		tt.Args("a: &x [1]\nb: &y [*x, *x]\nc: *y").Rets(vals.From(vals.Dict{
			"a": vals.From(vals.Array{vals.Int(1)}),
			"b": vals.From(vals.Array{vals.From(vals.Array{vals.Int(1)}), vals.From(vals.Array{vals.Int(1)})}),
			"c": vals.From(vals.Array{vals.From(vals.Array{vals.Int(1)}), vals.From(vals.Array{vals.Int(1)})}),
		}), nil),
	})
}

func TestDecode_Errors(t *testing.T) {
	tt.Test(t, tt.Fn("Decode", decodeString), tt.Table{
		tt.Args("!length 5").Rets(vals.None, &DecodeError{1, 1, `cannot parse as length: "5"`}),
		tt.Args("!color nope").Rets(vals.None, &DecodeError{1, 1, `invalid hex color: "nope"`}),
		tt.Args("x: !point 1").Rets(vals.None, &DecodeError{1, 4, "unknown tag !point"}),
		tt.Args("a: 1\na: 2").Rets(vals.None, &DecodeError{2, 1, `duplicate key "a"`}),
		tt.Args("? [1]\n: 2").Rets(vals.None, &DecodeError{1, 3, "dictionary keys must be strings"}),
		tt.Args("&a [*a]").Rets(vals.None, &DecodeError{1, 5, "alias *a refers to itself"}),
		tt.Args("&a {x: [1, *a]}").Rets(vals.None, &DecodeError{1, 12, "alias *a refers to itself"}),
	})
	if _, err := decodeString("a: [1"); err == nil {
		t.Errorf("malformed YAML decoded without error")
	}
}

func TestDecode_AliasExpansionLimit(t *testing.T) {
	// Each level refers to the previous one ten times, so the last level
	// expands to 10^6 scalars.
	var sb strings.Builder
	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d [", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "*l%d", i-1)
		}
		sb.WriteString("]\n")
	}

	_, err := decodeString(sb.String())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("got error %v, want *DecodeError", err)
	}
	if !strings.Contains(decodeErr.Message, "aliases expand to more than") {
		t.Errorf("got message %q, want it to mention the alias expansion limit", decodeErr.Message)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := vals.From(vals.Dict{
		"none":   vals.None,
		"yes":    vals.Bool(true),
		"n":      vals.Int(-3),
		"f":      vals.Float(2),
		"inf":    vals.Float(math.Inf(1)),
		"s":      vals.Str("true"),
		"empty":  vals.Str(""),
		"len":    vals.Length(geom.Millimeters(3)),
		"turn":   vals.Angle(geom.Radians(1.5)),
		"share":  vals.Relative(0.25),
		"inset":  vals.Linear(geom.Linear{Rel: 0.1, Abs: geom.Inches(1)}),
		"fill":   vals.Color(color.RGBA(1, 2, 3, 4)),
		"list":   vals.From(vals.Array{vals.Int(1), vals.From(vals.Array{})}),
		"nested": vals.From(vals.Dict{"k": vals.ErrorValue}),
	})
	data, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(%s) -> err %v", data, err)
	}
	if !vals.Equal(back, v) {
		t.Errorf("round trip gave %s, want %s\nYAML:\n%s", vals.Repr(back), vals.Repr(v), data)
	}
}

func TestEncode_KeysAreSorted(t *testing.T) {
	data, err := Encode(vals.From(vals.Dict{"b": vals.Int(2), "a": vals.Int(1)}))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "a: 1\nb: 2\n" {
		t.Errorf("Encode gave %q", got)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	for _, v := range []vals.Value{
		vals.Template(markup.Tree{markup.Strong{}}),
		vals.From(vals.NewFunc("f", nil)),
		vals.From(vals.Array{vals.Template(nil)}),
	} {
		_, err := Encode(v)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("Encode(%s) -> err %v, want ErrUnsupported", vals.Repr(v), err)
		}
		if err != nil && !strings.Contains(err.Error(), "template") && !strings.Contains(err.Error(), "function") {
			t.Errorf("error %q does not name the type", err)
		}
	}
}
