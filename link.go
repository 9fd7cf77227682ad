package lumina

import (
	"net/url"

	"github.com/cowwoc/lumina/ir"
)

// Link is a reference to a resource. It has exactly two variants:
// state-included, which wraps a Resource whose content is embedded in
// the enclosing document, and state-omitted, which carries only a URI.
type Link struct {
	resource *Resource
	uri      *url.URL
}

// LinkToResource returns a state-included link.
func LinkToResource(r *Resource) Link {
	return Link{resource: r}
}

// LinkToURI returns a state-omitted link.
func LinkToURI(u *url.URL) Link {
	return Link{uri: u}
}

func (l Link) IncludesState() bool {
	return l.resource != nil
}

// Resource returns the wrapped resource for state-included links.
func (l Link) Resource() (*Resource, bool) {
	return l.resource, l.resource != nil
}

// URI returns the target URI. For state-included links it is read from
// the resource's own link property: (nil, nil) when the property is
// absent, an error when it is present but malformed.
func (l Link) URI() (*url.URL, error) {
	if l.resource == nil {
		return l.uri, nil
	}
	p, err := l.resource.OptionalProperty(MetaLink)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return p.URIValue()
}

func (l Link) Equal(o Link) bool {
	if l.IncludesState() != o.IncludesState() {
		return false
	}
	if l.resource != nil {
		return l.resource.Equal(o.resource)
	}
	return l.uri.String() == o.uri.String()
}

func (l Link) String() string {
	if l.resource != nil {
		return l.resource.String()
	}
	return l.uri.String()
}

// linkFromNode returns the link a node denotes, or ok=false when the
// node is not a reference. A string is a reference iff it parses as a
// URI. An object is a reference iff it carries the reserved link
// property; a link property that is present but not a URI-valued string
// is always a hard error, since its presence is an explicit claim of
// linkhood.
func linkFromNode(node *ir.Node) (Link, bool, error) {
	switch node.Type {
	case ir.StringType:
		u, err := parseURI(node.String)
		if err != nil {
			return Link{}, false, nil
		}
		return LinkToURI(u), true, nil
	case ir.ObjectType:
		linkProp := ir.Get(node, MetaLink)
		if linkProp == nil {
			return Link{}, false, nil
		}
		if linkProp.Type != ir.StringType {
			return Link{}, false, malformedf(CodeInvalidLink, node,
				"the value of a %s property must be a string, got %s", MetaLink, linkProp.Type)
		}
		u, err := parseURI(linkProp.String)
		if err != nil {
			return Link{}, false, malformedf(CodeInvalidLink, node,
				"the value of a %s property must be a valid URI: %v", MetaLink, err)
		}
		r, err := New(node, u, node.Path())
		if err != nil {
			return Link{}, false, err
		}
		return LinkToResource(r), true, nil
	default:
		return Link{}, false, nil
	}
}

// hasValidLink reports whether an object node is a nested-resource
// boundary: it carries a syntactically valid link property.
func hasValidLink(node *ir.Node) (bool, error) {
	linkProp := ir.Get(node, MetaLink)
	if linkProp == nil {
		return false, nil
	}
	if linkProp.Type != ir.StringType {
		return false, malformedf(CodeInvalidLink, node,
			"the value of a %s property must be a string, got %s", MetaLink, linkProp.Type)
	}
	if _, err := parseURI(linkProp.String); err != nil {
		return false, malformedf(CodeInvalidLink, node,
			"the value of a %s property must be a valid URI: %v", MetaLink, err)
	}
	return true, nil
}
