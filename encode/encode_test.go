package encode

import (
	"testing"

	"github.com/cowwoc/lumina/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

type encodeTest struct {
	name string
	node *ir.Node
	opts []EncodeOption
	res  string
}

var encodeTests = []encodeTest{
	{
		name: "null",
		node: ir.Null(),
		res:  "null\n",
	},
	{
		name: "string",
		node: ir.FromString("x"),
		res:  "\"x\"\n",
	},
	{
		name: "empty object",
		node: obj(),
		res:  "{}\n",
	},
	{
		name: "empty array",
		node: ir.FromSlice(nil),
		res:  "[]\n",
	},
	{
		name: "object default indent",
		node: obj(kv("a", ir.FromInt(1))),
		res:  "{\n  \"a\": 1\n}\n",
	},
	{
		name: "object indent 4",
		node: obj(kv("a", ir.FromInt(1))),
		opts: []EncodeOption{Indent(4)},
		res:  "{\n    \"a\": 1\n}\n",
	},
	{
		name: "object compact",
		node: obj(kv("b", ir.FromInt(1)), kv("a", ir.FromInt(2))),
		opts: []EncodeOption{Compact()},
		res:  `{"b":1,"a":2}`,
	},
	{
		name: "nested compact",
		node: obj(kv("a", ir.FromSlice([]*ir.Node{ir.FromInt(1), obj(kv("b", ir.FromBool(true)))}))),
		opts: []EncodeOption{Compact()},
		res:  `{"a":[1,{"b":true}]}`,
	},
	{
		name: "array default indent",
		node: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
		res:  "[\n  1,\n  2\n]\n",
	},
	{
		name: "integral float keeps its point",
		node: ir.FromFloat(1),
		opts: []EncodeOption{Compact()},
		res:  "1.0",
	},
	{
		name: "float",
		node: ir.FromFloat(-0.25),
		opts: []EncodeOption{Compact()},
		res:  "-0.25",
	},
	{
		name: "number literal",
		node: &ir.Node{Type: ir.NumberType, Number: "123456789012345678901234567890"},
		opts: []EncodeOption{Compact()},
		res:  "123456789012345678901234567890",
	},
}

func TestEncode(t *testing.T) {
	for i := range encodeTests {
		test := &encodeTests[i]
		t.Run(test.name, func(t *testing.T) {
			d, err := Bytes(test.node, test.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != test.res {
				t.Errorf("got %q want %q", d, test.res)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	quoteTests := []struct{ in, res string }{
		{in: "", res: `""`},
		{in: "x", res: `"x"`},
		{in: `a"b`, res: `"a\"b"`},
		{in: `a\b`, res: `"a\\b"`},
		{in: "a\nb", res: `"a\nb"`},
		{in: "a\tb", res: `"a\tb"`},
		{in: "\x01", res: `""`},
		{in: "héllo", res: `"héllo"`},
	}
	for _, test := range quoteTests {
		if got := Quote(test.in); got != test.res {
			t.Errorf("%q: got %s want %s", test.in, got, test.res)
		}
	}
}

func TestMustString(t *testing.T) {
	node := obj(kv("a", ir.FromString("x")))
	if got := MustString(node); got != `{"a":"x"}` {
		t.Errorf("got %s", got)
	}
}
