package vals

import "src.marq.sh/pkg/diag"

// Args holds the arguments of a function call. Functions take arguments out
// of it with Find, Expect and Get, and finally call Finish to report the
// arguments they did not use.
type Args struct {
	// Range of the whole argument list.
	diag.Ranging
	Items []Arg
}

// Arg is one argument. Name.V is empty for positional arguments.
type Arg struct {
	Name  diag.Spanned[string]
	Value diag.Spanned[Value]
}

// NewArgs returns Args with the given positional arguments, all located at
// the range r.
func NewArgs(r diag.Ranger, pos ...Value) *Args {
	args := &Args{Ranging: r.Range()}
	for _, v := range pos {
		args.Items = append(args.Items, Arg{Value: diag.Span(v, r)})
	}
	return args
}

// Push appends a positional argument.
func (args *Args) Push(v diag.Spanned[Value]) {
	args.Items = append(args.Items, Arg{Value: v})
}

// PushNamed appends a named argument.
func (args *Args) PushNamed(name diag.Spanned[string], v diag.Spanned[Value]) {
	args.Items = append(args.Items, Arg{Name: name, Value: v})
}

func (args *Args) remove(i int) {
	args.Items = append(args.Items[:i], args.Items[i+1:]...)
}

// Find removes and returns the first positional argument that can be cast to
// T. A cast warning is reported to ctx.
func Find[T any](ctx Context, args *Args) (T, bool) {
	for i, arg := range args.Items {
		if arg.Name.V != "" {
			continue
		}
		r := CastUnspanned[T](arg.Value)
		if t, ok := r.Ok(); ok {
			args.remove(i)
			if msg, warn := r.Warning(); warn {
				ctx.Diag(diag.NewWarning(arg.Value, "%s", msg))
			}
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Expect is like Find, but reports an error to ctx when there is no suitable
// argument. If there are positional arguments left, the first of them is
// removed and reported as having the wrong type; otherwise the argument named
// by what is reported as missing.
func Expect[T any](ctx Context, args *Args, what string) (T, bool) {
	if t, ok := Find[T](ctx, args); ok {
		return t, true
	}
	for i, arg := range args.Items {
		if arg.Name.V == "" {
			args.remove(i)
			ctx.Diag(typeMismatch[T](arg.Value))
			var zero T
			return zero, false
		}
	}
	ctx.Diag(diag.NewError(args, "missing argument: %s", what))
	var zero T
	return zero, false
}

// Get removes the named argument and casts it to T. It returns false if there
// is no such argument, or if the cast fails, in which case an error is
// reported to ctx.
func Get[T any](ctx Context, args *Args, name string) (T, bool) {
	var zero T
	for i, arg := range args.Items {
		if arg.Name.V != name {
			continue
		}
		args.remove(i)
		r := CastUnspanned[T](arg.Value)
		switch r.Outcome {
		case CastWarn:
			ctx.Diag(diag.NewWarning(arg.Value, "%s", r.Message))
		case CastErr:
			ctx.Diag(typeMismatch[T](arg.Value))
			return zero, false
		}
		return r.Value, true
	}
	return zero, false
}

// Finish reports every argument left in args as unexpected.
func (args *Args) Finish(ctx Context) {
	for _, arg := range args.Items {
		if arg.Name.V == "" {
			ctx.Diag(diag.NewError(arg.Value, "unexpected argument"))
		} else {
			ctx.Diag(diag.NewError(arg.Name, "unexpected argument: %s", arg.Name.V))
		}
	}
	args.Items = nil
}

func typeMismatch[T any](v diag.Spanned[Value]) diag.Diag {
	return diag.NewError(v, "expected %s, found %s", TypeNameOf[T](), v.V.TypeName())
}
