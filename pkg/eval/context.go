// Package eval evaluates marq values into document output.
package eval

import (
	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/logutil"
	"src.marq.sh/pkg/markup"
)

var logger = logutil.GetLogger("[eval] ")

// Context is the state of an evaluation: the document output produced so far
// and the diagnostics reported. The zero value is ready to use.
type Context struct {
	out   markup.Tree
	diags []diag.Diag
}

var _ vals.Context = (*Context)(nil)

// Push appends a node to the output.
func (ctx *Context) Push(node markup.Node) {
	ctx.out = append(ctx.out, node)
}

// MakeTextNode wraps text as an output node.
func (ctx *Context) MakeTextNode(text string) markup.Node {
	return markup.Text(text)
}

// Diag records a diagnostic.
func (ctx *Context) Diag(d diag.Diag) {
	logger.Println("diag:", d.Error())
	ctx.diags = append(ctx.diags, d)
}

// Output returns the nodes pushed so far.
func (ctx *Context) Output() markup.Tree {
	return ctx.out
}

// Diags returns the diagnostics recorded so far.
func (ctx *Context) Diags() []diag.Diag {
	return ctx.diags
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (ctx *Context) HasErrors() bool {
	for _, d := range ctx.diags {
		if d.Level == diag.Error {
			return true
		}
	}
	return false
}
