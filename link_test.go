package lumina

import (
	"errors"
	"net/url"
	"testing"
)

func TestLinkToURI(t *testing.T) {
	u, _ := url.Parse("https://x/1")
	link := LinkToURI(u)
	if link.IncludesState() {
		t.Error("uri link omits state")
	}
	got, err := link.URI()
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Error("URI must be the wrapped value")
	}
	if _, ok := link.Resource(); ok {
		t.Error("uri link has no resource")
	}
}

func TestLinkToResourceLazyURI(t *testing.T) {
	res := mustResource(t, `{"@link": "https://x/1", "a": 1}`)
	link := res.AsLink()
	if !link.IncludesState() {
		t.Error("resource link includes state")
	}
	u, err := link.URI()
	if err != nil {
		t.Fatal(err)
	}
	if u.String() != "https://x/1" {
		t.Errorf("got %s", u)
	}
}

func TestLinkURIAbsent(t *testing.T) {
	res := mustResource(t, `{"a": 1}`)
	u, err := res.AsLink().URI()
	if err != nil {
		t.Fatal(err)
	}
	if u != nil {
		t.Errorf("got %s want nil", u)
	}
}

func TestLinkURIMalformed(t *testing.T) {
	res := mustResource(t, `{"@link": 5}`)
	_, err := res.AsLink().URI()
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("got %v want ErrMalformedDocument", err)
	}
}

func TestLinkEqual(t *testing.T) {
	u1, _ := url.Parse("https://x/1")
	u2, _ := url.Parse("https://x/2")
	if !LinkToURI(u1).Equal(LinkToURI(u1)) {
		t.Error("same uri")
	}
	if LinkToURI(u1).Equal(LinkToURI(u2)) {
		t.Error("different uris")
	}
	res := mustResource(t, `{"@link": "https://x/1"}`)
	if LinkToURI(u1).Equal(res.AsLink()) {
		t.Error("variants differ")
	}
	other := mustResource(t, `{"@link": "https://x/1"}`)
	if !res.AsLink().Equal(other.AsLink()) {
		t.Error("equal resource content")
	}
}

func TestLinkString(t *testing.T) {
	u, _ := url.Parse("https://x/1")
	if got := LinkToURI(u).String(); got != "https://x/1" {
		t.Errorf("got %q", got)
	}
}
