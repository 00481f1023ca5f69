package prog_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"src.marq.sh/pkg/logutil"
	. "src.marq.sh/pkg/prog"
	"src.marq.sh/pkg/prog/progtest"
)

var (
	Test     = progtest.Test
	ThatMarq = progtest.ThatMarq
)

func TestCommonFlagHandling(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log")
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })

	Test(t, testProgram{},
		ThatMarq("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatMarq("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatMarq("-help").
			WritesStdoutContaining("Usage: marq [flags] subcommand [args...]"),

		ThatMarq("-log", logFile).DoesNothing(),
		ThatMarq("-log", "/a/bad/path/log").
			WritesStderrContaining("/a/bad/path/log"),
	)

	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

func TestFlags(t *testing.T) {
	t.Setenv(EnvDB, "/from/env")
	var got Flags
	Test(t, flagsProgram{&got},
		ThatMarq("-width", "20", "-db", "/from/flag").DoesNothing())
	if got.Width != 20 || got.DB != "/from/flag" {
		t.Errorf("got flags %+v", got)
	}

	Test(t, flagsProgram{&got}, ThatMarq().DoesNothing())
	if got.DB != "/from/env" {
		t.Errorf("got DB %q, want value of $%s", got.DB, EnvDB)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatMarq().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatMarq().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatMarq().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatMarq().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatMarq().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatMarq().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatMarq().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type flagsProgram struct{ f *Flags }

func (p flagsProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	*p.f = *f
	return nil
}
