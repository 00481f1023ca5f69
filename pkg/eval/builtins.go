package eval

import (
	"fmt"
	"math"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/yamlval"
)

// A color component in [0, 1]. Numbers outside the range are clamped with a
// warning, and NaN becomes 0.
type unitFloat float64

func (unitFloat) TypeName() string { return "float" }

func init() {
	vals.RegisterCoercion(vals.CoerceFromWarn(toUnitFloat))
	vals.RegisterCoercion(vals.CoerceFromWarn(func(i int64) (unitFloat, string) {
		return toUnitFloat(float64(i))
	}))
}

func toUnitFloat(f float64) (unitFloat, string) {
	switch {
	case math.IsNaN(f):
		return 0, "color component NaN clamped to 0"
	case f < 0:
		return 0, fmt.Sprintf("color component %v clamped to 0", f)
	case f > 1:
		return 1, fmt.Sprintf("color component %v clamped to 1", f)
	}
	return unitFloat(f), ""
}

var builtinFns = map[string]vals.FuncImpl{
	"type": func(ctx vals.Context, args *vals.Args) vals.Value {
		v, ok := vals.Expect[vals.Value](ctx, args, "value")
		args.Finish(ctx)
		if !ok {
			return vals.ErrorValue
		}
		return vals.Str(v.TypeName())
	},
	"repr": func(ctx vals.Context, args *vals.Args) vals.Value {
		v, ok := vals.Expect[vals.Value](ctx, args, "value")
		args.Finish(ctx)
		if !ok {
			return vals.ErrorValue
		}
		return vals.Str(vals.Repr(v))
	},
	"rgb": rgb,
	"yaml": func(ctx vals.Context, args *vals.Args) vals.Value {
		src, ok := vals.Expect[string](ctx, args, "text")
		args.Finish(ctx)
		if !ok {
			return vals.ErrorValue
		}
		v, err := yamlval.Decode([]byte(src))
		if err != nil {
			ctx.Diag(diag.NewError(args, "invalid YAML: %v", err))
			return vals.ErrorValue
		}
		return v
	},
}

func rgb(ctx vals.Context, args *vals.Args) vals.Value {
	r, okR := vals.Expect[unitFloat](ctx, args, "red component")
	g, okG := vals.Expect[unitFloat](ctx, args, "green component")
	b, okB := vals.Expect[unitFloat](ctx, args, "blue component")
	a, okA := vals.Find[unitFloat](ctx, args)
	if !okA {
		a = 1
	}
	args.Finish(ctx)
	if !okR || !okG || !okB {
		return vals.ErrorValue
	}
	return vals.Color(color.RGBA(byteOf(r), byteOf(g), byteOf(b), byteOf(a)))
}

func byteOf(f unitFloat) uint8 {
	return uint8(float64(f)*255 + 0.5)
}

// Builtins returns the builtin scope: a dictionary from names to function
// values.
func Builtins() vals.Dict {
	d := make(vals.Dict, len(builtinFns))
	for name, impl := range builtinFns {
		d[name] = vals.From(vals.NewFunc(name, impl))
	}
	return d
}

// Call calls the builtin named name with the given arguments. It reports an
// error and returns the error value if there is no such builtin.
func Call(ctx *Context, name string, args *vals.Args) vals.Value {
	impl, ok := builtinFns[name]
	if !ok {
		ctx.Diag(diag.NewError(args, "unknown function: %s", name))
		return vals.ErrorValue
	}
	logger.Printf("calling %s with %d arguments", name, len(args.Items))
	return vals.NewFunc(name, impl).Call(ctx, args)
}
