package eval

import (
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/markup"
)

// Eval appends the document form of v to the output of ctx:
//
//   - None produces nothing;
//   - a string produces one text node with its content;
//   - a template is evaluated with EvalTree;
//   - any other value produces one text node with its canonical form.
func Eval(ctx *Context, v vals.Value) {
	switch v.Kind() {
	case vals.KindNone:
		return
	case vals.KindStr:
		s, _ := vals.Cast[string](v).Ok()
		ctx.Push(ctx.MakeTextNode(s))
	case vals.KindTemplate:
		tree, _ := vals.Cast[markup.Tree](v).Ok()
		EvalTree(ctx, tree)
	default:
		ctx.Push(ctx.MakeTextNode(vals.Repr(v)))
	}
}

// EvalTree appends the nodes of a markup tree to the output of ctx. The nodes
// are cloned, so later changes to the output do not affect the tree.
func EvalTree(ctx *Context, tree markup.Tree) {
	for _, n := range tree {
		ctx.Push(markup.CloneNode(n))
	}
}

// Text returns the text of an output tree, with markup nodes in their source
// form.
func Text(tree markup.Tree) string {
	return tree.Repr()
}
