package ir_test

import (
	"strings"
	"testing"

	"github.com/cowwoc/lumina/decode"
	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "null",
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[1,2,3]",
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: "$.'$f[\\'3]'[2]",
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   `["b",3]`,
	},
	{
		NoGet: true,
		Path:  "$.c...a",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[3]",
	},
	{
		NoGet: true,
		Path:  "$.c...x",
		Doc:   `{"a": "b", "c": {"d": 2, "a": 3}}`,
		Res:   "[]",
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.NoGet {
			continue
		}
		node, err := decode.Parse([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		pp, err := ir.ParsePath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		t.Logf("got path %q -> %q", pathTest.Path, pp.String())

		if res == nil {
			t.Error("no result")
			continue
		}
		out := strings.TrimSpace(encode.MustString(res))
		if out != pathTest.Res {
			t.Errorf("got %q want %q", out, pathTest.Res)
			continue
		}
	}
}

func TestPathList(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		node, err := decode.Parse([]byte(pathTest.Doc))
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.ListPath(nil, pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if !pathTest.NoGet {
			if len(res) != 1 {
				t.Errorf("%s: got %d results want 1", pathTest.Path, len(res))
				continue
			}
			out := encode.MustString(res[0])
			if out != pathTest.Res {
				t.Errorf("got %q want %q", out, pathTest.Res)
			}
			continue
		}
		out := encode.MustString(ir.FromSlice(res))
		if out != pathTest.Res {
			t.Errorf("%s: got %q want %q", pathTest.Path, out, pathTest.Res)
		}
	}
}

func TestPathGetAbsent(t *testing.T) {
	node, err := decode.Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := node.GetPath("$.b")
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Errorf("got %s want nil", encode.MustString(res))
	}
}

func TestPathRender(t *testing.T) {
	node, err := decode.Parse([]byte(`{"a": {"b.c": [null]}}`))
	if err != nil {
		t.Fatal(err)
	}
	inner := ir.Get(node, "a")
	leaf := inner.Values[0].Values[0]
	if got := leaf.Path(); got != "$.a.'b.c'[0]" {
		t.Errorf("got %q", got)
	}
}
