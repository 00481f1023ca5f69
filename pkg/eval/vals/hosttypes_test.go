package vals

import (
	"fmt"

	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/markup"
)

// Host types used in tests.

// side is a simple boxable enum.
type side int

const (
	left side = iota
	right
)

func (side) TypeName() string   { return "side" }
func (s side) Equal(o side) bool { return s == o }
func (s side) Clone() side       { return s }

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

// align accepts sides, with a warning for right.
type align struct{ s side }

func (align) TypeName() string    { return "alignment" }
func (a align) Equal(o align) bool { return a == o }
func (a align) Clone() align       { return a }
func (a align) String() string     { return "align(" + a.s.String() + ")" }

func (align) CastFrom() []Coercion {
	return []Coercion{CoerceFromWarn(func(s side) (align, string) {
		if s == right {
			return align{s}, "right alignment is experimental"
		}
		return align{s}, ""
	})}
}

// tags has reference semantics, to test that boxed values are cloned deeply.
type tags struct{ names []string }

func (tags) TypeName() string { return "tags" }
func (t tags) String() string { return fmt.Sprint(t.names) }
func (t tags) Clone() tags    { return tags{append([]string(nil), t.names...)} }

func (t tags) Equal(o tags) bool {
	if len(t.names) != len(o.names) {
		return false
	}
	for i := range t.names {
		if t.names[i] != o.names[i] {
			return false
		}
	}
	return true
}

func init() {
	Register[side]()
}

// testContext records pushed nodes and diagnostics.
type testContext struct {
	out   markup.Tree
	diags []diag.Diag
}

func (c *testContext) Push(n markup.Node)                  { c.out = append(c.out, n) }
func (c *testContext) MakeTextNode(text string) markup.Node { return markup.Text(text) }
func (c *testContext) Diag(d diag.Diag)                    { c.diags = append(c.diags, d) }
