package decode

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/cowwoc/lumina/ir"

	"github.com/goccy/go-yaml"
)

// FromAny bridges pre-parsed Go values into the node model. It accepts
// the value shapes the YAML decoder and callers with already-unmarshaled
// documents produce.
func FromAny(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return fromUint64(uint64(t)), nil
	case uint32:
		return ir.FromInt(int64(t)), nil
	case uint64:
		return fromUint64(t), nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case json.Number:
		return numberNode(string(t)), nil
	case time.Time:
		return ir.FromString(t.Format(time.RFC3339)), nil
	case []any:
		elems := make([]*ir.Node, 0, len(t))
		for _, e := range t {
			node, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, node)
		}
		return ir.FromSlice(elems), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			val, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []*ir.Node:
		return ir.FromSlice(t), nil
	case map[string]*ir.Node:
		return ir.FromMap(t), nil
	case *ir.Node:
		return t, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a node", v)
	}
}

func fromUint64(u uint64) *ir.Node {
	if u <= 1<<63-1 {
		return ir.FromInt(int64(u))
	}
	return numberNode(fmt.Sprintf("%d", u))
}
