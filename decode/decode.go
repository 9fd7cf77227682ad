// Package decode turns JSON or YAML text into ir.Node trees, preserving
// the order of object keys as they appear in the source.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cowwoc/lumina/debug"
	"github.com/cowwoc/lumina/format"
	"github.com/cowwoc/lumina/ir"

	gojson "github.com/goccy/go-json"
)

// Parse decodes d into an ir.Node. The input format defaults to JSON;
// use WithFormat or YAML to decode YAML input.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if debug.Decode() {
		debug.Logf("decode %d bytes as %s\n", len(d), cfg.format)
	}
	switch cfg.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := readValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrParse)
	}
	return node, nil
}

func readValue(dec *gojson.Decoder, tok gojson.Token) (*ir.Node, error) {
	switch v := tok.(type) {
	case gojson.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, v.String())
		}
	case string:
		return ir.FromString(v), nil
	case bool:
		return ir.FromBool(v), nil
	case gojson.Number:
		return numberNode(string(v)), nil
	case float64:
		return ir.FromFloat(v), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

// readObject consumes tokens up to and including the closing brace.
// Duplicate keys are appended in source order; readers resolving a field
// by name see the first occurrence.
func readObject(dec *gojson.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key must be a string, got %v", ErrParse, tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		val, err := readValue(dec, tok)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
}

func readArray(dec *gojson.Decoder) (*ir.Node, error) {
	var elems []*ir.Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == ']' {
			return ir.FromSlice(elems), nil
		}
		val, err := readValue(dec, tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}
}

// numberNode keeps the source literal and fills Int64 or Float64, trying
// the integer interpretation first.
func numberNode(literal string) *ir.Node {
	node := &ir.Node{
		Type:   ir.NumberType,
		Number: literal,
	}
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		node.Int64 = &i
		return node
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		node.Float64 = &f
	}
	return node
}
