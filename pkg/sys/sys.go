// Package sys provides terminal utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// Width returns the number of columns of the terminal referenced by the given
// file, or fallback if the file is not a terminal.
func Width(file *os.File, fallback int) int {
	if !IsATTY(file.Fd()) {
		return fallback
	}
	if _, col := WinSize(file); col > 0 {
		return col
	}
	return fallback
}
