package vals

import "strings"

// reprBuilder builds the canonical form of arrays and dictionaries.
type reprBuilder struct {
	indent int
	n      int
	sb     strings.Builder
}

func newReprBuilder(indent int) *reprBuilder {
	b := &reprBuilder{indent: indent}
	b.sb.WriteByte('(')
	return b
}

func (b *reprBuilder) writeElem(s string) {
	if b.indent >= 0 {
		// Pretty-printing: every element on its own line, followed by a comma.
		b.sb.WriteByte('\n')
		b.sb.WriteString(strings.Repeat("  ", b.indent+1))
		b.sb.WriteString(s)
		b.sb.WriteByte(',')
	} else {
		if b.n > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(s)
	}
	b.n++
}

func (b *reprBuilder) close() string {
	if b.indent >= 0 && b.n > 0 {
		b.sb.WriteByte('\n')
		b.sb.WriteString(strings.Repeat("  ", b.indent))
	}
	b.sb.WriteByte(')')
	return b.sb.String()
}

// listString finishes an array. A single element gets a trailing comma, so
// that it is not mistaken for a parenthesized expression.
func (b *reprBuilder) listString() string {
	if b.indent < 0 && b.n == 1 {
		b.sb.WriteByte(',')
	}
	return b.close()
}

// dictString finishes a dictionary. An empty dictionary is written as (:), to
// tell it apart from an empty array.
func (b *reprBuilder) dictString() string {
	if b.n == 0 {
		b.sb.WriteByte(':')
	}
	return b.close()
}
