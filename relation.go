package lumina

import (
	"errors"
	"fmt"
)

// Relation names the conventional relations used by this document
// format.
type Relation int

const (
	RelationParent Relation = iota
	RelationFormCreate
	RelationFormUpdate
	RelationFormDelete
)

var ErrBadRelation = errors.New("bad relation")

func ParseRelation(v string) (Relation, error) {
	r, ok := map[string]Relation{
		"parent":     RelationParent,
		"formCreate": RelationFormCreate,
		"formUpdate": RelationFormUpdate,
		"formDelete": RelationFormDelete,
	}[v]
	if ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadRelation, v)
}

func (r Relation) String() string {
	d, err := r.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (r Relation) MarshalText() ([]byte, error) {
	switch r {
	case RelationParent:
		return []byte("parent"), nil
	case RelationFormCreate:
		return []byte("formCreate"), nil
	case RelationFormUpdate:
		return []byte("formUpdate"), nil
	case RelationFormDelete:
		return []byte("formDelete"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a relation>", r)
	}
}

func (r *Relation) UnmarshalText(d []byte) error {
	pr, err := ParseRelation(string(d))
	if err != nil {
		return err
	}
	*r = pr
	return nil
}

func Relations() []Relation {
	return []Relation{
		RelationParent,
		RelationFormCreate,
		RelationFormUpdate,
		RelationFormDelete,
	}
}
