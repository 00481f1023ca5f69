// Package yamlval converts between marq values and YAML documents.
//
// YAML mappings become dictionaries, sequences become arrays, and untagged
// scalars become none, booleans, integers, floats or strings following the
// YAML 1.2 core schema. Measurement and color values use tagged scalars in
// their canonical form:
//
//	width: !length 5.5pt
//	turn: !angle 90.0deg
//	share: !relative 50.0%
//	inset: !linear 30.0% + 2.0cm
//	fill: !color "#f79143"
//	broken: !error
//
// Templates, functions and boxed values have no YAML form.
package yamlval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/strutil"
)

// Tags for values that have no YAML counterpart.
const (
	LengthTag   = "!length"
	AngleTag    = "!angle"
	RelativeTag = "!relative"
	LinearTag   = "!linear"
	ColorTag    = "!color"
	ErrorTag    = "!error"
)

// ErrUnsupported is returned by Encode for values that have no YAML form.
var ErrUnsupported = errors.New("value cannot be encoded as YAML")

// DecodeError is returned by Decode for YAML nodes that cannot be converted.
type DecodeError struct {
	Line, Column int
	Message      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{n.Line, n.Column, fmt.Sprintf(format, args...)}
}

// Decode parses a YAML document into a value. An empty document decodes to
// none.
func Decode(src []byte) (vals.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return vals.None, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return vals.None, nil
	}
	return FromNode(doc.Content[0])
}

// FromNode converts a YAML node to a value. Aliases are expanded in place; an
// alias inside the node it refers to is an error, and so is a document whose
// aliases expand to more than maxAliasExpansion nodes.
func FromNode(n *yaml.Node) (vals.Value, error) {
	d := &decoder{expanding: make(map[*yaml.Node]bool)}
	return d.fromNode(n)
}

const maxAliasExpansion = 100000

type decoder struct {
	expanding map[*yaml.Node]bool
	// Number of nodes decoded under at least one alias.
	expanded int
}

func (d *decoder) fromNode(n *yaml.Node) (vals.Value, error) {
	if len(d.expanding) > 0 {
		d.expanded++
		if d.expanded > maxAliasExpansion {
			return vals.None, nodeError(n, "aliases expand to more than %d nodes", maxAliasExpansion)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return vals.None, nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil || d.expanding[n.Alias] {
			return vals.None, nodeError(n, "alias *%s refers to itself", n.Value)
		}
		d.expanding[n.Alias] = true
		defer delete(d.expanding, n.Alias)
		return d.fromNode(n.Alias)
	case yaml.SequenceNode:
		arr := make(vals.Array, len(n.Content))
		for i, elem := range n.Content {
			v, err := d.fromNode(elem)
			if err != nil {
				return vals.None, err
			}
			arr[i] = v
		}
		return vals.From(arr), nil
	case yaml.MappingNode:
		dict := make(vals.Dict, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return vals.None, nodeError(k, "dictionary keys must be strings")
			}
			if _, dup := dict[k.Value]; dup {
				return vals.None, nodeError(k, "duplicate key %q", k.Value)
			}
			v, err := d.fromNode(vn)
			if err != nil {
				return vals.None, err
			}
			dict[k.Value] = v
		}
		return vals.From(dict), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return vals.None, nodeError(n, "unknown node kind %v", n.Kind)
	}
}

func fromScalar(n *yaml.Node) (vals.Value, error) {
	var (
		v   vals.Value
		err error
	)
	switch n.Tag {
	case LengthTag:
		var l geom.Length
		l, err = geom.ParseLength(n.Value)
		v = vals.Length(l)
	case AngleTag:
		var a geom.Angle
		a, err = geom.ParseAngle(n.Value)
		v = vals.Angle(a)
	case RelativeTag:
		var r geom.Relative
		r, err = geom.ParseRelative(n.Value)
		v = vals.Relative(r)
	case LinearTag:
		var l geom.Linear
		l, err = geom.ParseLinear(n.Value)
		v = vals.Linear(l)
	case ColorTag:
		var c color.Color
		c, err = color.ParseHex(n.Value)
		v = vals.Color(c)
	case ErrorTag:
		v = vals.ErrorValue
	case "!!null":
		v = vals.None
	case "!!bool":
		var b bool
		err = n.Decode(&b)
		v = vals.Bool(b)
	case "!!int":
		var i int64
		err = n.Decode(&i)
		v = vals.Int(i)
	case "!!float":
		var f float64
		err = n.Decode(&f)
		v = vals.Float(f)
	case "!!str", "!!timestamp", "!!binary", "":
		v = vals.Str(n.Value)
	default:
		return vals.None, nodeError(n, "unknown tag %s", n.Tag)
	}
	if err != nil {
		return vals.None, nodeError(n, "%v", err)
	}
	return v, nil
}

// Encode serializes a value as a YAML document.
func Encode(v vals.Value) ([]byte, error) {
	n, err := ToNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// ToNode converts a value to a YAML node. It returns an error wrapping
// ErrUnsupported for templates, functions and boxed values, or collections
// containing them.
func ToNode(v vals.Value) (*yaml.Node, error) {
	switch p := v.Payload().(type) {
	case nil:
		return scalar("!!null", "null"), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(p)), nil
	case int64:
		return scalar("!!int", strconv.FormatInt(p, 10)), nil
	case float64:
		return scalar("!!float", formatFloat(p)), nil
	case string:
		return scalar("!!str", p), nil
	case geom.Length:
		return scalar(LengthTag, p.String()), nil
	case geom.Angle:
		return scalar(AngleTag, p.String()), nil
	case geom.Relative:
		return scalar(RelativeTag, p.String()), nil
	case geom.Linear:
		return scalar(LinearTag, p.String()), nil
	case color.Color:
		return scalar(ColorTag, p.String()), nil
	case vals.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range p {
			en, err := ToNode(elem)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case vals.Dict:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range p.Keys() {
			vn, err := ToNode(p[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, scalar("!!str", k), vn)
		}
		return n, nil
	}
	if v.Kind() == vals.KindError {
		return scalar(ErrorTag, ""), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, v.TypeName())
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strutil.FormatFloat(f)
}
