package lumina

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cowwoc/lumina/ir"

	"github.com/google/uuid"
)

// Property is an ephemeral view over one property of a resource: its
// name, its value node and whether it was found inside the state
// container. It has no identity beyond its wrapped data and is recreated
// on every query.
type Property struct {
	name        string
	value       *ir.Node
	insideState bool
}

// NewProperty wraps a property. value must be non-nil. insideState is
// true when the property is declared inside the state container, where
// metadata-shaped names are application state.
func NewProperty(name string, value *ir.Node, insideState bool) *Property {
	return &Property{name: name, value: value, insideState: insideState}
}

func (p *Property) Name() string {
	return p.name
}

func (p *Property) Value() *ir.Node {
	return p.value
}

// IsMetadata reports whether the property is document metadata: its name
// starts with the reserved marker and it is not inside the state
// container.
func (p *Property) IsMetadata() bool {
	return !p.insideState && strings.HasPrefix(p.name, string(Marker))
}

func (p *Property) IsState() bool {
	return !p.IsMetadata()
}

// StringValue returns the value as a string, or a type_mismatch error.
func (p *Property) StringValue() (string, error) {
	if p.value.Type != ir.StringType {
		return "", malformedf(CodeTypeMismatch, p.value,
			"%s must be a string, got %s", p.name, p.value.Type)
	}
	return p.value.String, nil
}

// URIValue returns the string value parsed as a URI.
func (p *Property) URIValue() (*url.URL, error) {
	s, err := p.StringValue()
	if err != nil {
		return nil, err
	}
	u, err := parseURI(s)
	if err != nil {
		return nil, malformedf(CodeInvalidURI, p.value,
			"%s must be a valid URI: %v", p.name, err)
	}
	return u, nil
}

// StringValues returns the value as an array of strings. Each element is
// re-wrapped as a Property inheriting the insideState flag.
func (p *Property) StringValues() ([]string, error) {
	if p.value.Type != ir.ArrayType {
		return nil, malformedf(CodeTypeMismatch, p.value,
			"%s must be an array, got %s", p.name, p.value.Type)
	}
	elements := make([]string, 0, len(p.value.Values))
	for _, v := range p.value.Values {
		s, err := NewProperty(p.name, v, p.insideState).StringValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, s)
	}
	return elements, nil
}

// TimeValue returns the string value parsed as an RFC 3339 instant.
func (p *Property) TimeValue() (time.Time, error) {
	s, err := p.StringValue()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, malformedf(CodeInvalidTimestamp, p.value,
			"%s must be an RFC 3339 instant: %v", p.name, err)
	}
	return t, nil
}

// UUIDValue returns the string value parsed as a UUID.
func (p *Property) UUIDValue() (uuid.UUID, error) {
	s, err := p.StringValue()
	if err != nil {
		return uuid.UUID{}, err
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, malformedf(CodeInvalidUUID, p.value,
			"%s must be a UUID: %v", p.name, err)
	}
	return u, nil
}

// IntStringMap returns the value as a map from integer keys to string
// values.
func (p *Property) IntStringMap() (map[int]string, error) {
	if p.value.Type != ir.ObjectType {
		return nil, malformedf(CodeTypeMismatch, p.value,
			"%s must be an object, got %s", p.name, p.value.Type)
	}
	res := make(map[int]string, len(p.value.Fields))
	for i, field := range p.value.Fields {
		key, err := strconv.Atoi(field.String)
		if err != nil {
			return nil, malformedf(CodeInvalidInteger, p.value,
				"%s keys must be integers, got %q", p.name, field.String)
		}
		s, err := NewProperty(field.String, p.value.Values[i], p.insideState).StringValue()
		if err != nil {
			return nil, err
		}
		res[key] = s
	}
	return res, nil
}
