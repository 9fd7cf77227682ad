package encode

import (
	"bytes"
	"strings"

	"github.com/cowwoc/lumina/ir"
)

// MustString renders node compactly for diagnostics. It panics on writer
// errors, which bytes.Buffer never produces.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Compact()); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
