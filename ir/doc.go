// Package ir provides the intermediate representation for hypermedia
// documents.
//
// All documents, whether decoded from JSON or YAML text or created
// programmatically, are represented as ir.Node trees. A Node is a
// recursive tagged union: the Type field selects which value fields are
// populated.
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values, and their
// order is the order of the source document. This ordering is what makes
// "first match in document order" well-defined for relation searches.
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField), allowing navigation back up the tree and rendering of
// JSONPath-style paths:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// Nodes are immutable after construction. The package performs no I/O.
package ir
