// Package prog provides the entry point to marq. Its subpackages correspond
// to subprograms of marq.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram", one of the build information printer or the value tool.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.marq.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// EnvDB is the environment variable that supplies the default database path.
const EnvDB = "MARQ_DB"

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool

	// Maximal width of output before values are shown in the indented form.
	// Zero means the width of the terminal.
	Width int

	DB string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("marq", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON. Useful with -buildinfo")

	fs.IntVar(&f.Width, "width", 0, "maximal width of one-line output; 0 for the terminal width")
	fs.StringVar(&f.DB, "db", "", "path to the database; defaults to $"+EnvDB)

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: marq [flags] subcommand [args...]")
	fmt.Fprintln(out, "Subcommands:")
	fmt.Fprintln(out, "  repr FILE         show the value in FILE")
	fmt.Fprintln(out, "  eval FILE         evaluate the value in FILE into text")
	fmt.Fprintln(out, "  call FUNC FILE    call a builtin with the arguments in FILE")
	fmt.Fprintln(out, "  put NAME FILE     store the value in FILE as NAME")
	fmt.Fprintln(out, "  get NAME          show the stored value NAME")
	fmt.Fprintln(out, "  del NAME          delete the stored value NAME")
	fmt.Fprintln(out, "  ls                list the names of stored values")
	fmt.Fprintln(out, "FILE may be - for standard input.")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. marq defines -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if f.DB == "" {
		f.DB = os.Getenv(EnvDB)
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	logger.Println("running with arguments", fs.Args())
	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	logger.Println("subprogram returned error:", err)
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
