package diag

import "fmt"

// Level is the severity of a Diag.
type Level int

// Possible values of Level.
const (
	Warning Level = iota
	Error
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Diag is a diagnostic message attached to a range of source code. Diags do not
// abort evaluation; they are collected and shown after it finishes.
type Diag struct {
	Level   Level
	Message string
	Ranging
}

// NewError returns an error-level Diag.
func NewError(r Ranger, format string, args ...any) Diag {
	return Diag{Error, fmt.Sprintf(format, args...), r.Range()}
}

// NewWarning returns a warning-level Diag.
func NewWarning(r Ranger, format string, args ...any) Diag {
	return Diag{Warning, fmt.Sprintf(format, args...), r.Range()}
}

// Error returns a plain text representation of the Diag, so that it can also be
// used as an error value.
func (d Diag) Error() string {
	return fmt.Sprintf("%s: %d-%d: %s", d.Level, d.From, d.To, d.Message)
}

// Show shows the Diag. If color is true, the level is highlighted with VT100
// escape sequences.
func (d Diag) Show(color bool) string {
	level := d.Level.String()
	if color {
		switch d.Level {
		case Error:
			level = "\033[31;1m" + level + "\033[m"
		case Warning:
			level = "\033[33;1m" + level + "\033[m"
		}
	}
	return fmt.Sprintf("%s: %s (at %d-%d)", level, d.Message, d.From, d.To)
}
