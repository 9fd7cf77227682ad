package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/cowwoc/lumina/ir"
)

type EncState struct {
	col           int
	depth, indent int
	wire          bool

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON. The default rendering is indented;
// use Compact for the wire form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

// Bytes renders node with the given options and returns the result.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ObjectType, SepColor, "{")
	if err := writeString(w, open); err != nil {
		return err
	}
	es.col++
	if len(node.Fields) == 0 {
		es.col++
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeComma(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.col++
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ArrayType, SepColor, "[")
	if err := writeString(w, open); err != nil {
		return err
	}
	es.col++
	if len(node.Values) == 0 {
		es.col++
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeComma(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.col++
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func writeComma(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	es.col += len(sep)
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	f = Quote(f)
	fColor := f
	if es.Color != nil {
		fColor = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	if err := writeString(w, fColor+sep); err != nil {
		return err
	}
	es.col += len(f) + len(sep)
	return nil
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := Quote(node.String)
	es.col += len(v)
	v = applyColor(es, ir.StringType, ValueColor, v)
	return writeString(w, v)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Number != "":
		// the source literal is exact; decoded values may not be
		v = node.Number
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		// keep float nodes floats on re-decode
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	default:
		v = "0"
	}
	es.col += len(v)
	v = applyColor(es, ir.NumberType, ValueColor, v)
	return writeString(w, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	es.col += len(v)
	v = applyColor(es, ir.BoolType, ValueColor, v)
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := applyColor(es, ir.NullType, ValueColor, "null")
	es.col += 4
	return writeString(w, v)
}
