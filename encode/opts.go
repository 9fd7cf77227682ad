package encode

type EncodeOption func(*EncState)

// Indent sets the indentation width for the default pretty rendering.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact requests the wire form: no whitespace, no trailing newline.
func Compact() EncodeOption {
	return func(es *EncState) { es.wire = true }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
