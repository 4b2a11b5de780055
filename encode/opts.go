package encode

type EncodeOption func(*EncState)

// Indent sets the indentation width; 0 selects compact single-line output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
