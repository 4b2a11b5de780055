// Package encode renders node trees as JSON text, honoring the tree's
// field order, with optional indentation and ANSI colors.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pathobj/pathobj/ir"
)

type EncState struct {
	depth  int
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default is indented output (2 spaces); use
// Indent(0) for compact single-line form. A trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.ObjectType:
		return encodeObject(y, w, es)
	case ir.ArrayType:
		return encodeArray(y, w, es)
	default:
		lit, err := literal(y)
		if err != nil {
			return err
		}
		return writeString(w, es.colorize(y.Type, ValueColor, lit))
	}
}

func encodeObject(y *ir.Node, w io.Writer, es *EncState) error {
	if len(y.Fields) == 0 {
		return writeString(w, es.colorize(y.Type, SepColor, "{}"))
	}
	if err := writeString(w, es.colorize(y.Type, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range y.Fields {
		if i > 0 {
			if err := writeString(w, es.colorize(y.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := es.colorize(y.Type, FieldColor, strconv.Quote(f))
		sep := es.colorize(y.Type, SepColor, ":")
		if es.indent > 0 {
			sep += " "
		}
		if err := writeString(w, field+sep); err != nil {
			return err
		}
		if err := encode(y.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.colorize(y.Type, SepColor, "}"))
}

func encodeArray(y *ir.Node, w io.Writer, es *EncState) error {
	if len(y.Values) == 0 {
		return writeString(w, es.colorize(y.Type, SepColor, "[]"))
	}
	if err := writeString(w, es.colorize(y.Type, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range y.Values {
		if i > 0 {
			if err := writeString(w, es.colorize(y.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.colorize(y.Type, SepColor, "]"))
}

func literal(y *ir.Node) (string, error) {
	switch y.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(y.Bool), nil
	case ir.StringType:
		return strconv.Quote(y.String), nil
	case ir.NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10), nil
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64), nil
		}
		return y.String, nil
	case ir.OpaqueType:
		d, err := json.Marshal(y.Opaque)
		if err != nil {
			// not JSON-representable, fall back to quoted display form
			return strconv.Quote(fmt.Sprint(y.Opaque)), nil
		}
		return string(d), nil
	default:
		return "", fmt.Errorf("cannot encode %s as a literal", y.Type)
	}
}

// writeNL breaks the line and indents to the current depth; in compact form
// it writes nothing.
func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) colorize(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}
