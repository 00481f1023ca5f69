package vals

import (
	"fmt"

	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/markup"
)

// Context is the environment a function is called in.
type Context interface {
	// Push appends a node to the document output.
	Push(node markup.Node)
	// MakeTextNode wraps text as an output node.
	MakeTextNode(text string) markup.Node
	// Diag reports a diagnostic.
	Diag(d diag.Diag)
}

// FuncImpl is the implementation of a function.
type FuncImpl func(ctx Context, args *Args) Value

// Func is a named function. Copies of a Func share the same implementation,
// including any state captured by it; the implementation must not mutate that
// state.
//
// Functions are incomparable: Equal always returns false, even for two copies
// of the same Func. The name is only used for display.
type Func struct {
	name string
	impl FuncImpl
}

// NewFunc returns a function with the given name and implementation.
func NewFunc(name string, impl FuncImpl) Func {
	return Func{name, impl}
}

// Name returns the name of the function.
func (f Func) Name() string { return f.name }

// Call calls the function.
func (f Func) Call(ctx Context, args *Args) Value {
	return f.impl(ctx, args)
}

// Equal always returns false.
func (f Func) Equal(Func) bool { return false }

// Repr returns the canonical form of the function, like "(function len)".
func (f Func) Repr() string {
	return "(function " + f.name + ")"
}

// GoString returns the debug form of the function.
func (f Func) GoString() string {
	return fmt.Sprintf("vals.Func{name: %q}", f.name)
}
