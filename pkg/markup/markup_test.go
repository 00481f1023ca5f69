package markup

import (
	"testing"

	"src.marq.sh/pkg/tt"
)

func TestRepr(t *testing.T) {
	tt.Test(t, tt.Fn("Tree.Repr", Tree.Repr), tt.Table{
		tt.Args(Tree(nil)).Rets(""),
		tt.Args(Tree{Strong{}}).Rets("*"),
		tt.Args(Tree{Text("f")}).Rets("f"),
		tt.Args(Tree{Strong{}, Text("Hi"), Strong{}, Space{}, Text("there")}).Rets("*Hi* there"),
		tt.Args(Tree{Emph{}, Text("a"), Emph{}, Linebreak{}, Parbreak{}}).Rets("_a_\\\n\n"),
		tt.Args(Tree{Heading{2, Tree{Text("Intro")}}}).Rets("== Intro"),
		tt.Args(Tree{Raw{Lines: []string{"x := 1"}}}).Rets("`x := 1`"),
		tt.Args(Tree{Raw{"go", []string{"a", "b"}, true}}).Rets("```go\na\nb\n```"),
	})
}

func TestEqual(t *testing.T) {
	a := Tree{Heading{1, Tree{Text("x")}}, Space{}}
	tt.Test(t, tt.Fn("Tree.Equal", Tree.Equal), tt.Table{
		tt.Args(a, Tree{Heading{1, Tree{Text("x")}}, Space{}}).Rets(true),
		tt.Args(a, Tree{Heading{2, Tree{Text("x")}}, Space{}}).Rets(false),
		tt.Args(a, Tree{Heading{1, Tree{Text("x")}}}).Rets(false),
		tt.Args(Tree{Strong{}}, Tree{Emph{}}).Rets(false),
		tt.Args(Tree(nil), Tree{}).Rets(true),
	})
}

func TestClone(t *testing.T) {
	orig := Tree{Heading{1, Tree{Text("x")}}, Raw{Lines: []string{"a"}}}
	c := orig.Clone()
	if !c.Equal(orig) {
		t.Fatalf("Clone() = %v, want %v", c, orig)
	}
	c[0].(Heading).Contents[0] = Text("changed")
	c[1].(Raw).Lines[0] = "changed"
	if orig.Repr() != "= x`a`" {
		t.Errorf("modifying clone changed original to %q", orig.Repr())
	}
}
