// Package markup contains the node types of marq markup subtrees.
//
// The same nodes are used for templates held in values and for the document
// output produced by evaluation.
package markup

import (
	"reflect"
	"strings"
)

// Node is a markup node.
type Node interface {
	writeRepr(sb *strings.Builder)
}

// Tree is a sequence of markup nodes.
type Tree []Node

// Text is plain text.
type Text string

// Space is inter-word spacing.
type Space struct{}

// Linebreak is a forced line break.
type Linebreak struct{}

// Parbreak separates paragraphs.
type Parbreak struct{}

// Strong toggles strong emphasis.
type Strong struct{}

// Emph toggles emphasis.
type Emph struct{}

// Heading is a section heading.
type Heading struct {
	Level    int
	Contents Tree
}

// Raw is raw text, optionally tagged with a language.
type Raw struct {
	Lang  string
	Lines []string
	Block bool
}

func (t Text) writeRepr(sb *strings.Builder) { sb.WriteString(string(t)) }

func (Space) writeRepr(sb *strings.Builder)     { sb.WriteByte(' ') }
func (Linebreak) writeRepr(sb *strings.Builder) { sb.WriteByte('\\') }
func (Parbreak) writeRepr(sb *strings.Builder)  { sb.WriteString("\n\n") }
func (Strong) writeRepr(sb *strings.Builder)    { sb.WriteByte('*') }
func (Emph) writeRepr(sb *strings.Builder)      { sb.WriteByte('_') }

func (h Heading) writeRepr(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", h.Level))
	sb.WriteByte(' ')
	h.Contents.writeRepr(sb)
}

func (r Raw) writeRepr(sb *strings.Builder) {
	if r.Block {
		sb.WriteString("```")
		sb.WriteString(r.Lang)
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(r.Lines, "\n"))
		sb.WriteString("\n```")
		return
	}
	sb.WriteByte('`')
	sb.WriteString(strings.Join(r.Lines, "\n"))
	sb.WriteByte('`')
}

func (t Tree) writeRepr(sb *strings.Builder) {
	for _, n := range t {
		n.writeRepr(sb)
	}
}

// Repr returns the markup source form of the tree.
func (t Tree) Repr() string {
	var sb strings.Builder
	t.writeRepr(&sb)
	return sb.String()
}

// Repr returns the markup source form of a single node.
func Repr(n Node) string {
	var sb strings.Builder
	n.writeRepr(&sb)
	return sb.String()
}

// Equal reports whether two trees consist of the same nodes.
func (t Tree) Equal(o Tree) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !reflect.DeepEqual(t[i], o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	c := make(Tree, len(t))
	for i, n := range t {
		c[i] = CloneNode(n)
	}
	return c
}

// CloneNode returns a deep copy of a node.
func CloneNode(n Node) Node {
	switch n := n.(type) {
	case Heading:
		return Heading{n.Level, n.Contents.Clone()}
	case Raw:
		return Raw{n.Lang, append([]string(nil), n.Lines...), n.Block}
	default:
		// All other nodes are immutable values.
		return n
	}
}
