package lumina

import (
	"net/url"

	"github.com/cowwoc/lumina/ir"
)

// Resource is the caller-facing view over one object node of a document:
// the node, its canonical URI and its path within the enclosing
// document. All operations are pure, repeatable queries over the
// immutable node.
type Resource struct {
	node *ir.Node
	uri  *url.URL
	path string
}

// New wraps an object node. node must be non-nil and of ObjectType, uri
// must be non-nil; path is the node's $-rooted path within the enclosing
// document ("" means the root).
func New(node *ir.Node, uri *url.URL, path string) (*Resource, error) {
	if node == nil {
		return nil, &ValidationError{Name: "node", Message: "may not be nil"}
	}
	if node.Type != ir.ObjectType {
		return nil, &ValidationError{Name: "node", Value: node.Type.String(), Message: "must be an object"}
	}
	if uri == nil {
		return nil, &ValidationError{Name: "uri", Message: "may not be nil"}
	}
	if path == "" {
		path = "$"
	}
	return &Resource{node: node, uri: uri, path: path}, nil
}

// AsLink returns a state-included link to this resource.
func (r *Resource) AsLink() Link {
	return LinkToResource(r)
}

func (r *Resource) URI() *url.URL {
	return r.uri
}

func (r *Resource) Path() string {
	return r.path
}

func (r *Resource) Node() *ir.Node {
	return r.node
}

func (r *Resource) String() string {
	return r.uri.String()
}

func (r *Resource) Equal(o *Resource) bool {
	if o == nil {
		return false
	}
	return ir.Equal(r.node, o.node)
}

// StateContainer returns the state container's value when present, else
// the wrapped object itself. State-aware accessors go through this
// rather than raw property lookup.
func (r *Resource) StateContainer() *ir.Node {
	if state := ir.Get(r.node, MetaState); state != nil {
		return state
	}
	return r.node
}

// ContainsState reports whether the resource carries any state, even
// empty state: an own property that is not metadata, or an explicit
// state container.
func (r *Resource) ContainsState() bool {
	for _, field := range r.node.Fields {
		name := field.String
		if len(name) == 0 || name[0] != byte(Marker) || name == MetaState {
			return true
		}
	}
	return false
}

// OptionalProperty looks name up directly on the wrapped object and, on
// a miss, one level inside the state container (not recursively); a
// property found there is marked inside-state. Returns (nil, nil) when
// neither location has a match.
func (r *Resource) OptionalProperty(name string) (*Property, error) {
	if err := validateName("name", name); err != nil {
		return nil, err
	}
	match := ir.Get(r.node, name)
	if match != nil {
		return NewProperty(name, match, false), nil
	}
	state := ir.Get(r.node, MetaState)
	if state == nil || state.Type != ir.ObjectType {
		return nil, nil
	}
	match = ir.Get(state, name)
	if match == nil {
		return nil, nil
	}
	return NewProperty(name, match, true), nil
}

// Property returns the named property or a NoSuchPropertyError.
func (r *Resource) Property(name string) (*Property, error) {
	p, err := r.OptionalProperty(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &NoSuchPropertyError{Object: r.node, Name: name}
	}
	return p, nil
}

// OptionalResource returns a descendant link with the requested
// relation, or (nil, nil) when there is no match. When more than one
// match is structurally possible, the first in document order wins.
func (r *Resource) OptionalResource(relation string) (*Link, error) {
	if err := validateName("relation", relation); err != nil {
		return nil, err
	}
	q := &relQuery{relation: relation, one: true}
	matches, err := q.run(r.node)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// Resource returns a descendant link with the requested relation or a
// NoSuchRelationError.
func (r *Resource) Resource(relation string) (*Link, error) {
	link, err := r.OptionalResource(relation)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, &NoSuchRelationError{From: r.node, Relation: relation}
	}
	return link, nil
}

// OptionalResources returns every descendant link with the requested
// relation in document order, without de-duplication.
func (r *Resource) OptionalResources(relation string) ([]Link, error) {
	if err := validateName("relation", relation); err != nil {
		return nil, err
	}
	q := &relQuery{relation: relation}
	return q.run(r.node)
}

// Resources returns every descendant link with the requested relation or
// a NoSuchRelationError when there are none.
func (r *Resource) Resources(relation string) ([]Link, error) {
	matches, err := r.OptionalResources(relation)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, &NoSuchRelationError{From: r.node, Relation: relation}
	}
	return matches, nil
}

// StringValues returns the state container's value as a list of strings.
// The state container must be present and must be an array of strings.
func (r *Resource) StringValues() ([]string, error) {
	state := ir.Get(r.node, MetaState)
	if state == nil {
		return nil, malformedf(CodeInvalidState, r.node,
			"resource must contain a %s property", MetaState)
	}
	if state.Type != ir.ArrayType {
		return nil, malformedf(CodeInvalidState, state,
			"%s property must be an array, got %s", MetaState, state.Type)
	}
	elements := make([]string, 0, len(state.Values))
	for _, v := range state.Values {
		if v.Type != ir.StringType {
			return nil, malformedf(CodeInvalidState, v,
				"%s must contain string elements, got %s", MetaState, v.Type)
		}
		elements = append(elements, v.String)
	}
	return elements, nil
}

// ResourceLinks returns the state container's value as a list of links
// in document order. Every element must resolve to a link; an element
// that does not is a hard error, never a silent skip.
func (r *Resource) ResourceLinks() ([]Link, error) {
	state := ir.Get(r.node, MetaState)
	if state == nil {
		return nil, malformedf(CodeInvalidState, r.node,
			"resource must contain a %s property", MetaState)
	}
	if state.Type != ir.ArrayType {
		return nil, malformedf(CodeInvalidState, state,
			"%s property must be an array, got %s", MetaState, state.Type)
	}
	links := make([]Link, 0, len(state.Values))
	for _, v := range state.Values {
		link, ok, err := linkFromNode(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, malformedf(CodeInvalidState, v,
				"%s must contain resources", MetaState)
		}
		links = append(links, link)
	}
	return links, nil
}
