package lumina

import (
	"errors"
	"net/url"
	"testing"

	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"

	"github.com/google/go-cmp/cmp"
)

func TestNewValidation(t *testing.T) {
	base, _ := url.Parse("https://example.com")
	obj := ir.FromKeyVals(nil)
	if _, err := New(nil, base, "$"); !errors.Is(err, ErrValidation) {
		t.Errorf("nil node: got %v want ErrValidation", err)
	}
	if _, err := New(ir.FromString("x"), base, "$"); !errors.Is(err, ErrValidation) {
		t.Errorf("non-object node: got %v want ErrValidation", err)
	}
	if _, err := New(obj, nil, "$"); !errors.Is(err, ErrValidation) {
		t.Errorf("nil uri: got %v want ErrValidation", err)
	}
	res, err := New(obj, base, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Path() != "$" {
		t.Errorf("got path %q want $", res.Path())
	}
}

func TestStateContainer(t *testing.T) {
	res := mustResource(t, `{"@state": {"a": 1}, "b": 2}`)
	if got := encode.MustString(res.StateContainer()); got != `{"a":1}` {
		t.Errorf("got %s", got)
	}
	res = mustResource(t, `{"a": 1}`)
	if res.StateContainer() != res.Node() {
		t.Error("expected the object itself")
	}
	// taking the container twice is the same as taking it once
	inner, err := New(res.StateContainer(), res.URI(), res.Path())
	if err != nil {
		t.Fatal(err)
	}
	if inner.StateContainer() != res.StateContainer() {
		t.Error("state container is not idempotent")
	}
}

func TestContainsState(t *testing.T) {
	containsTests := []struct {
		doc string
		res bool
	}{
		{doc: `{}`, res: false},
		{doc: `{"@link": "https://x/1"}`, res: false},
		{doc: `{"@link": "https://x/1", "a": 1}`, res: true},
		{doc: `{"@state": {}}`, res: true},
		{doc: `{"@state": []}`, res: true},
	}
	for _, test := range containsTests {
		res := mustResource(t, test.doc)
		if got := res.ContainsState(); got != test.res {
			t.Errorf("%s: got %v want %v", test.doc, got, test.res)
		}
	}
}

func TestOptionalProperty(t *testing.T) {
	res := mustResource(t, `{"a": 1, "@state": {"b": 2, "@c": 3}}`)

	p, err := res.OptionalProperty("a")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || encode.MustString(p.Value()) != "1" {
		t.Errorf("got %v", p)
	}
	if p.IsMetadata() {
		t.Error("a is state")
	}

	p, err = res.OptionalProperty("b")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || encode.MustString(p.Value()) != "2" {
		t.Errorf("got %v", p)
	}
	if !p.IsState() {
		t.Error("b is state")
	}

	// marker-prefixed names inside the state container are state
	p, err = res.OptionalProperty("@c")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Fatal("no match")
	}
	if p.IsMetadata() {
		t.Error("@c inside state is state")
	}

	p, err = res.OptionalProperty("missing")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("got %v want nil", p)
	}
}

func TestPropertyLookupEquivalence(t *testing.T) {
	inline := mustResource(t, `{"a": 1}`)
	contained := mustResource(t, `{"@state": {"a": 1}}`)
	for _, res := range []*Resource{inline, contained} {
		p, err := res.Property("a")
		if err != nil {
			t.Fatal(err)
		}
		if encode.MustString(p.Value()) != "1" {
			t.Errorf("got %s", encode.MustString(p.Value()))
		}
		if !p.IsState() {
			t.Error("a is state")
		}
	}
}

func TestPropertyNotFound(t *testing.T) {
	res := mustResource(t, `{"a": 1}`)
	_, err := res.Property("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v want ErrNotFound", err)
	}
	var nsp *NoSuchPropertyError
	if !errors.As(err, &nsp) {
		t.Fatalf("got %T want *NoSuchPropertyError", err)
	}
	if nsp.Name != "missing" {
		t.Errorf("got %q", nsp.Name)
	}
}

func TestPropertyValidation(t *testing.T) {
	res := mustResource(t, `{"a": 1}`)
	for _, name := range []string{"", " a", "a "} {
		if _, err := res.OptionalProperty(name); !errors.Is(err, ErrValidation) {
			t.Errorf("name %q: got %v want ErrValidation", name, err)
		}
	}
}

func TestStringValues(t *testing.T) {
	res := mustResource(t, `{"@state": ["x", "y"]}`)
	got, err := res.StringValues()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"x", "y"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	for _, doc := range []string{`{}`, `{"@state": {}}`, `{"@state": ["x", 1]}`} {
		res := mustResource(t, doc)
		if _, err := res.StringValues(); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("%s: got %v want ErrMalformedDocument", doc, err)
		}
	}
}

func TestResourceLinks(t *testing.T) {
	res := mustResource(t, `{"@state": ["https://x/u1", {"@link": "https://x/u2", "name": "n"}]}`)
	links, err := res.ResourceLinks()
	if err != nil {
		t.Fatal(err)
	}
	got := linkURIs(t, links)
	if d := cmp.Diff([]string{"https://x/u1", "https://x/u2"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if links[0].IncludesState() {
		t.Error("first link omits state")
	}
	if !links[1].IncludesState() {
		t.Error("second link includes state")
	}

	// a non-link element is an error, not a skip
	res = mustResource(t, `{"@state": ["a b"]}`)
	_, err = res.ResourceLinks()
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v want ErrMalformedDocument", err)
	}
	var mde *MalformedDocumentError
	if !errors.As(err, &mde) || mde.Code != CodeInvalidState {
		t.Errorf("got %v want code %s", err, CodeInvalidState)
	}
}
