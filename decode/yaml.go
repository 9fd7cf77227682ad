package decode

import (
	"fmt"

	"github.com/cowwoc/lumina/ir"

	"github.com/goccy/go-yaml"
)

// parseYAML decodes YAML input. UseOrderedMap yields yaml.MapSlice
// values, which preserve mapping order the way our object nodes require.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}
