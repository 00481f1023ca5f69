// Package tool is the value tool subprogram of marq. It shows, evaluates and
// stores values read from YAML files.
package tool

import (
	"fmt"
	"io"
	"os"

	"src.marq.sh/pkg/diag"
	"src.marq.sh/pkg/errutil"
	"src.marq.sh/pkg/eval"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/logutil"
	"src.marq.sh/pkg/prog"
	"src.marq.sh/pkg/store"
	"src.marq.sh/pkg/sys"
	"src.marq.sh/pkg/yamlval"
)

var logger = logutil.GetLogger("[tool] ")

// Width used when stdout is not a terminal and -width is not given.
const defaultWidth = 80

// Program is the value tool subprogram.
type Program struct{}

type subcommand struct {
	nargs int
	usage string
	run   func(c *cmdContext, args []string) error
}

var subcommands = map[string]subcommand{
	"repr": {1, "repr FILE", runRepr},
	"eval": {1, "eval FILE", runEval},
	"call": {2, "call FUNC FILE", runCall},
	"put":  {2, "put NAME FILE", runPut},
	"get":  {1, "get NAME", runGet},
	"del":  {1, "del NAME", runDel},
	"ls":   {0, "ls", runLs},
}

type cmdContext struct {
	fds [3]*os.File
	f   *prog.Flags
}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no subcommand given")
	}
	sub, ok := subcommands[args[0]]
	if !ok {
		return prog.BadUsage("unknown subcommand: " + args[0])
	}
	if len(args)-1 != sub.nargs {
		return prog.BadUsage("usage: marq " + sub.usage)
	}
	logger.Println("running subcommand", args[0])
	return sub.run(&cmdContext{fds, f}, args[1:])
}

// Reads and decodes the value in the named file, or stdin if the name is "-".
func (c *cmdContext) readValue(name string) (vals.Value, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(c.fds[0])
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return vals.None, err
	}
	v, err := yamlval.Decode(data)
	if err != nil {
		return vals.None, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// Writes the canonical form of v to stdout, switching to the indented form
// when the one-line form does not fit.
func (c *cmdContext) printValue(v vals.Value) {
	width := c.f.Width
	if width <= 0 {
		width = sys.Width(c.fds[1], defaultWidth)
	}
	s := vals.Repr(v)
	if len(s) > width {
		s = vals.ReprIndent(v, 0)
	}
	fmt.Fprintln(c.fds[1], s)
}

// Writes diagnostics to stderr. It returns an error if any of them is an
// error.
func (c *cmdContext) showDiags(ctx *eval.Context) error {
	color := sys.IsATTY(c.fds[2].Fd())
	for _, d := range ctx.Diags() {
		fmt.Fprintln(c.fds[2], d.Show(color))
	}
	if ctx.HasErrors() {
		return prog.Exit(1)
	}
	return nil
}

func (c *cmdContext) withStore(f func(st store.DBStore) error) (err error) {
	if c.f.DB == "" {
		return prog.BadUsage("no database; use -db or set $" + prog.EnvDB)
	}
	st, err := store.NewStore(c.f.DB)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	defer func() { err = errutil.Multi(err, st.Close()) }()
	return f(st)
}

func runRepr(c *cmdContext, args []string) error {
	v, err := c.readValue(args[0])
	if err != nil {
		return err
	}
	c.printValue(v)
	return nil
}

func runEval(c *cmdContext, args []string) error {
	v, err := c.readValue(args[0])
	if err != nil {
		return err
	}
	ctx := &eval.Context{}
	eval.Eval(ctx, v)
	fmt.Fprintln(c.fds[1], eval.Text(ctx.Output()))
	return c.showDiags(ctx)
}

// The arguments are the elements of an array, or a single value otherwise.
// Each argument is located at its index, so diagnostics show which one they
// are about.
func runCall(c *cmdContext, args []string) error {
	v, err := c.readValue(args[1])
	if err != nil {
		return err
	}
	var pos vals.Array
	if arr, ok := vals.Cast[vals.Array](v).Ok(); ok {
		pos = arr
	} else {
		pos = vals.Array{v}
	}
	callArgs := &vals.Args{Ranging: diag.Ranging{From: 0, To: len(pos)}}
	for i, arg := range pos {
		callArgs.Push(diag.Span(arg, diag.Ranging{From: i, To: i + 1}))
	}

	ctx := &eval.Context{}
	result := eval.Call(ctx, args[0], callArgs)
	c.printValue(result)
	return c.showDiags(ctx)
}

func runPut(c *cmdContext, args []string) error {
	v, err := c.readValue(args[1])
	if err != nil {
		return err
	}
	return c.withStore(func(st store.DBStore) error {
		return st.SetSharedValue(args[0], v)
	})
}

func runGet(c *cmdContext, args []string) error {
	return c.withStore(func(st store.DBStore) error {
		v, err := st.SharedValue(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		c.printValue(v)
		return nil
	})
}

func runDel(c *cmdContext, args []string) error {
	return c.withStore(func(st store.DBStore) error {
		return st.DelSharedValue(args[0])
	})
}

func runLs(c *cmdContext, args []string) error {
	return c.withStore(func(st store.DBStore) error {
		names, err := st.SharedValueNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(c.fds[1], name)
		}
		return nil
	})
}
