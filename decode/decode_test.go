package decode

import (
	"errors"
	"testing"

	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"
)

type parseTest struct {
	in   string
	opts []Option
	res  string
}

var parseTests = []parseTest{
	{in: `null`, res: `null`},
	{in: `true`, res: `true`},
	{in: `"x"`, res: `"x"`},
	{in: `1`, res: `1`},
	{in: `1.5`, res: `1.5`},
	{in: `-0.25`, res: `-0.25`},
	{in: `[]`, res: `[]`},
	{in: `{}`, res: `{}`},
	{in: `[1, "two", null]`, res: `[1,"two",null]`},
	{in: `{"b": 1, "a": 2}`, res: `{"b":1,"a":2}`},
	{in: `{"a": {"b": [1, {"c": 2}]}}`, res: `{"a":{"b":[1,{"c":2}]}}`},

	// integers beyond int64 keep their source literal
	{in: `123456789012345678901234567890`, res: `123456789012345678901234567890`},

	{in: "b: 1\na: 2", opts: []Option{YAML()}, res: `{"b":1,"a":2}`},
	{in: "- 1\n- two", opts: []Option{YAML()}, res: `[1,"two"]`},
	{in: "a:\n  b: [1, 2]", opts: []Option{YAML()}, res: `{"a":{"b":[1,2]}}`},
}

func TestParse(t *testing.T) {
	for i := range parseTests {
		test := &parseTests[i]
		node, err := Parse([]byte(test.in), test.opts...)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", test.in, err)
			continue
		}
		if got := encode.MustString(node); got != test.res {
			t.Errorf("%s: got %s want %s", test.in, got, test.res)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	node, err := Parse([]byte(`1`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Int64 == nil || *node.Int64 != 1 {
		t.Errorf("got %v", node.Int64)
	}
	if node.Float64 != nil {
		t.Error("integers do not fill Float64")
	}

	node, err = Parse([]byte(`1.5`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Float64 == nil || *node.Float64 != 1.5 {
		t.Errorf("got %v", node.Float64)
	}
	if node.Int64 != nil {
		t.Error("floats do not fill Int64")
	}
	if node.Number != "1.5" {
		t.Errorf("got literal %q", node.Number)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	node, err := Parse([]byte(`{"a": 1, "a": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 2 {
		t.Fatalf("got %d fields", len(node.Fields))
	}
	got := ir.Get(node, "a")
	if got.Int64 == nil || *got.Int64 != 1 {
		t.Errorf("Get must return the first occurrence, got %s", encode.MustString(got))
	}
}

func TestParseParentLinks(t *testing.T) {
	node, err := Parse([]byte(`{"a": [1, {"b": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	arr := ir.Get(node, "a")
	if arr.Parent != node {
		t.Error("array parent")
	}
	obj := arr.Values[1]
	if obj.Parent != arr || obj.ParentIndex != 1 {
		t.Error("element parent")
	}
	if got := ir.Get(obj, "b").Path(); got != "$.a[1].b" {
		t.Errorf("got path %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a"}`, `1 2`, `[1,]`} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v want ErrParse", in, err)
		}
	}
}

func TestParseYAMLError(t *testing.T) {
	if _, err := Parse([]byte("a: [1"), YAML()); err == nil {
		t.Error("expected error")
	}
}
