package lumina

import (
	"errors"
	"fmt"

	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrMalformedDocument = errors.New("malformed document")
)

// Codes carried by MalformedDocumentError.
const (
	CodeInvalidLink          = "invalid_link"
	CodeRelationsWithoutLink = "relations_without_link"
	CodeTypeMismatch         = "type_mismatch"
	CodeInvalidURI           = "invalid_uri"
	CodeInvalidTimestamp     = "invalid_timestamp"
	CodeInvalidInteger       = "invalid_integer"
	CodeInvalidUUID          = "invalid_uuid"
	CodeInvalidState         = "invalid_state"
)

// ValidationError reports a caller programming error: a blank or
// untrimmed relation or property-name argument, or an invalid
// constructor argument. It is raised before any search begins.
type ValidationError struct {
	Name    string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Name, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NoSuchRelationError reports an empty result for a well-formed relation
// query. It carries the node the search started from.
type NoSuchRelationError struct {
	From     *ir.Node
	Relation string
}

func (e *NoSuchRelationError) Error() string {
	return fmt.Sprintf("no relation %q in %s", e.Relation, encode.MustString(e.From))
}

func (e *NoSuchRelationError) Unwrap() error {
	return ErrNotFound
}

// NoSuchPropertyError reports a missing property in both the object and
// its state container.
type NoSuchPropertyError struct {
	Object *ir.Node
	Name   string
}

func (e *NoSuchPropertyError) Error() string {
	return fmt.Sprintf("no property %q in %s", e.Name, encode.MustString(e.Object))
}

func (e *NoSuchPropertyError) Unwrap() error {
	return ErrNotFound
}

// MalformedDocumentError reports a node that is structurally required to
// be a link, resource, array or string and is not. Document errors are
// fail-fast and never locally recovered.
type MalformedDocumentError struct {
	Code    string
	Node    *ir.Node
	Message string
}

func (e *MalformedDocumentError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s\nnode: %s", e.Code, e.Message, encode.MustString(e.Node))
}

func (e *MalformedDocumentError) Unwrap() error {
	return ErrMalformedDocument
}

func malformedf(code string, node *ir.Node, format string, args ...any) error {
	return &MalformedDocumentError{
		Code:    code,
		Node:    node,
		Message: fmt.Sprintf(format, args...),
	}
}
