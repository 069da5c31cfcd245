package chainfmt

import (
	"fmt"
	"strings"
)

// Format renders args through the chain's layers without printing.
//
// Layers and arguments are zipped in order. A layer with fixed text (a
// timestamp or separator) consumes no argument. Layers left without an
// argument produce nothing, surplus arguments are appended unstyled and
// unprocessed, and nil arguments are dropped wherever they appear. Styled
// pieces are strings; surplus pieces are the original values.
func (c *Chain) Format(args ...any) ([]any, error) {
	if c.err != nil {
		return nil, c.err
	}
	layers := c.store.layers
	result := make([]any, 0, len(layers)+len(args))
	argIndex := 0
	for _, layer := range layers {
		if layer.skip {
			continue
		}
		var content string
		if layer.fixed != nil {
			content = layer.fixed()
		} else {
			if argIndex >= len(args) {
				continue
			}
			arg := args[argIndex]
			argIndex++
			if isAbsent(arg) {
				continue
			}
			text, err := c.f.render(arg, layer.indentJSON)
			if err != nil {
				return nil, fmt.Errorf("chainfmt: format argument %d: %w", argIndex-1, err)
			}
			content = text
		}
		result = append(result, layer.style.Apply(layer.process(content)))
	}
	for ; argIndex < len(args); argIndex++ {
		if isAbsent(args[argIndex]) {
			continue
		}
		result = append(result, args[argIndex])
	}
	return result, nil
}

// FormatString renders args like Format and joins the pieces with single
// spaces, the way a console prints multiple values.
func (c *Chain) FormatString(args ...any) (string, error) {
	pieces, err := c.Format(args...)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, piece := range pieces {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s, ok := piece.(string); ok {
			b.WriteString(s)
			continue
		}
		text, err := c.f.render(piece, false)
		if err != nil {
			return "", fmt.Errorf("chainfmt: format piece %d: %w", i, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Print renders args and writes the line to the chain's console route.
func (c *Chain) Print(args ...any) error {
	c.pending = ""
	line, err := c.FormatString(args...)
	if err != nil {
		return err
	}
	return c.f.console.WriteLine(c.route, line)
}
