package lumina

import (
	"errors"
	"testing"
)

type parseURITest struct {
	in string
	ok bool
}

var parseURITests = []parseURITest{
	{in: "https://x/1", ok: true},
	{in: "https://x/1?q=2#frag", ok: true},
	{in: "/relative/path", ok: true},
	{in: "about:stdin", ok: true},
	{in: "a", ok: true},
	// the empty string is an empty relative reference
	{in: "", ok: true},
	{in: "https://x/%2f", ok: true},

	// excluded characters url.Parse tolerates in opaque positions
	{in: "a b", ok: false},
	{in: "a<b", ok: false},
	{in: "a>b", ok: false},
	{in: `a"b`, ok: false},
	{in: "a{b", ok: false},
	{in: "a}b", ok: false},
	{in: "a|b", ok: false},
	{in: `a\b`, ok: false},
	{in: "a^b", ok: false},
	{in: "a`b", ok: false},

	// control range
	{in: "a\x00b", ok: false},
	{in: "a\tb", ok: false},
	{in: "a\nb", ok: false},
	{in: "a\x1fb", ok: false},
	{in: "a\x7fb", ok: false},
}

func TestParseURI(t *testing.T) {
	for i := range parseURITests {
		test := &parseURITests[i]
		u, err := parseURI(test.in)
		if test.ok {
			if err != nil {
				t.Errorf("%q: %v", test.in, err)
				continue
			}
			if u.String() == "" && test.in != "" {
				t.Errorf("%q: empty result", test.in)
			}
			continue
		}
		if err == nil {
			t.Errorf("%q: expected error, got %s", test.in, u)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := validateName("name", "x"); err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"", " x", "x ", "\tx", "x\n"} {
		err := validateName("name", v)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%q: got %v want ErrValidation", v, err)
		}
	}
}
