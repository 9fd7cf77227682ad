package lumina

import (
	"errors"

	"github.com/cowwoc/lumina/debug"
	"github.com/cowwoc/lumina/ir"
)

// relQuery is one relation search. The insideState flag is threaded
// through the walk as an explicit parameter so the walk is a pure
// function of its inputs.
type relQuery struct {
	relation string
	one      bool
	matches  []Link
}

var errStopSearch = errors.New("stop search")

func (q *relQuery) run(root *ir.Node) ([]Link, error) {
	err := q.object(root, false)
	if err != nil && !errors.Is(err, errStopSearch) {
		return nil, err
	}
	return q.matches, nil
}

func (q *relQuery) add(l Link) error {
	q.matches = append(q.matches, l)
	if q.one {
		return errStopSearch
	}
	return nil
}

// object applies the search rules to one object node.
func (q *relQuery) object(node *ir.Node, insideState bool) error {
	if debug.Resolve() {
		debug.Logf("resolve %q at %s insideState=%v\n", q.relation, node.Path(), insideState)
	}
	if declaresRelation(node, q.relation) {
		link, ok, err := linkFromNode(node)
		if err != nil {
			return err
		}
		if !ok {
			return malformedf(CodeRelationsWithoutLink, node,
				"an object whose %s contains %q must carry a valid %s",
				MetaRelations, q.relation, MetaLink)
		}
		// An explicit relation declaration is terminal for this
		// object: its subtree is not scanned.
		return q.add(link)
	}
	for i := range node.Fields {
		name := node.Fields[i].String
		child := node.Values[i]
		if name == q.relation && !declaresAnyRelations(child) {
			link, ok, err := linkFromNode(child)
			if err != nil {
				return err
			}
			if ok {
				if err := q.add(link); err != nil {
					return err
				}
				continue
			}
		}
		if !insideState && len(name) > 0 && name[0] == byte(Marker) && name != MetaState {
			// Metadata properties are never searched into, except
			// the state container.
			continue
		}
		childInside := insideState || name == MetaState
		switch child.Type {
		case ir.ArrayType:
			if err := q.array(child, childInside, name == q.relation); err != nil {
				return err
			}
		case ir.ObjectType:
			if err := q.objectElem(child, childInside); err != nil {
				return err
			}
		}
		// Strings contribute no match on their own; they only match
		// through an enclosing property named after the relation.
	}
	return nil
}

// objectElem dispatches an object reached by recursion: an explicit
// relation declaration is searched, a nested-resource boundary is not
// descended into, anything else recurses.
func (q *relQuery) objectElem(node *ir.Node, insideState bool) error {
	if !declaresRelation(node, q.relation) {
		boundary, err := hasValidLink(node)
		if err != nil {
			return err
		}
		if boundary {
			return nil
		}
	}
	return q.object(node, insideState)
}

// array recurses element-wise, flattening nested arrays. named reports
// whether the enclosing property name equals the relation; it is
// inherited through nested arrays and makes string elements match.
func (q *relQuery) array(node *ir.Node, insideState, named bool) error {
	for _, child := range node.Values {
		switch child.Type {
		case ir.StringType:
			if !named {
				continue
			}
			u, err := parseURI(child.String)
			if err != nil {
				continue
			}
			if err := q.add(LinkToURI(u)); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := q.array(child, insideState, named); err != nil {
				return err
			}
		case ir.ObjectType:
			if err := q.objectElem(child, insideState); err != nil {
				return err
			}
		}
	}
	return nil
}

// declaresRelation reports whether node carries a relations list
// containing relation. Non-array lists and non-string elements are
// ignored, not errors.
func declaresRelation(node *ir.Node, relation string) bool {
	if node.Type != ir.ObjectType {
		return false
	}
	rels := ir.Get(node, MetaRelations)
	if rels == nil || rels.Type != ir.ArrayType {
		return false
	}
	for _, v := range rels.Values {
		if v.Type == ir.StringType && v.String == relation {
			return true
		}
	}
	return false
}

// declaresAnyRelations reports whether node carries any relations list.
// Such an object opts out of implicit property-name matching entirely.
func declaresAnyRelations(node *ir.Node) bool {
	return node.Type == ir.ObjectType && ir.Get(node, MetaRelations) != nil
}
