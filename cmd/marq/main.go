// Marq is the command-line tool of the marq markup language. It shows,
// evaluates and stores marq values written as YAML.
package main

import (
	"os"

	"src.marq.sh/pkg/buildinfo"
	"src.marq.sh/pkg/prog"
	"src.marq.sh/pkg/tool"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, tool.Program{})))
}
