package chainfmt

import (
	"strings"

	"pkt.systems/chainfmt/ansi"
)

// Chain accumulates format layers and renders arguments through them. Every
// builder method mutates the chain and returns it, so a chain can be kept and
// printed repeatedly; timestamp layers are re-evaluated on every render.
//
//	chainfmt.Log().Location().Cyan().Text().Bold().Print("db", "connected")
//
// Chains are not safe for concurrent use.
type Chain struct {
	f       *Formatter
	store   *layerStore
	route   Route
	pending string
	err     error
}

// Err returns the first error recorded by a builder method, such as an
// invalid hex colour. Terminal methods return it as well.
func (c *Chain) Err() error {
	return c.err
}

// Route returns the console route the chain prints to.
func (c *Chain) Route() Route {
	return c.route
}

// Layers returns the number of layers that consume an argument.
func (c *Chain) Layers() int {
	return c.store.argumentLayers()
}

func (c *Chain) fail(err error) *Chain {
	if c.err == nil {
		c.err = err
	}
	return c
}

// Log routes output to the main writer.
func (c *Chain) Log() *Chain { return c.setRoute(RouteLog) }

// Info routes output to the main writer as info.
func (c *Chain) Info() *Chain { return c.setRoute(RouteInfo) }

// Warn routes output to the error writer as a warning.
func (c *Chain) Warn() *Chain { return c.setRoute(RouteWarn) }

// Error routes output to the error writer.
func (c *Chain) Error() *Chain { return c.setRoute(RouteError) }

func (c *Chain) setRoute(route Route) *Chain {
	c.route = route
	return c
}

// Time prefixes output with the current time.
func (c *Chain) Time() *Chain { return c.setTimestamp(TimestampTime) }

// Date prefixes output with the current date.
func (c *Chain) Date() *Chain { return c.setTimestamp(TimestampDate) }

// DateTime prefixes output with the current date and time.
func (c *Chain) DateTime() *Chain { return c.setTimestamp(TimestampDateTime) }

// NoTimestamp suppresses the timestamp layer without disturbing the other
// layers.
func (c *Chain) NoTimestamp() *Chain {
	if layer := c.store.timestampLayer(); layer != nil {
		layer.skip = true
	}
	return c
}

func (c *Chain) setTimestamp(mode TimestampMode) *Chain {
	if mode == TimestampNone {
		return c.NoTimestamp()
	}
	layer := c.store.timestampLayer()
	if layer == nil {
		layer = c.store.newLayer(true)
		layer.timestamp = true
		layer.processors = []func(string) string{squareBrackets}
		if c.f.styling {
			layer.style, _ = layer.style.With("gray")
		}
	}
	layer.fixed = c.f.clock(mode).Current
	layer.skip = false
	return c
}

// Text starts a new argument layer.
func (c *Chain) Text() *Chain {
	c.store.newLayer(false)
	return c
}

// Title starts a bold argument layer followed by a line break.
func (c *Chain) Title() *Chain { return c.Text().Bold().Linebreak() }

// Location starts an argument layer wrapped in square brackets.
func (c *Chain) Location() *Chain { return c.Text().Square() }

// Paragraph starts an argument layer followed by a line break.
func (c *Chain) Paragraph() *Chain { return c.Text().Linebreak() }

// Section starts an argument layer surrounded by line breaks.
func (c *Chain) Section() *Chain { return c.Text().Newline().Linebreak() }

// Line adds a separator layer using the formatter's default character and
// length. Styles chained afterwards apply to the separator.
func (c *Chain) Line() *Chain {
	return c.line(c.f.lineChar, c.f.defaultLineLength())
}

// LineOf adds a separator layer of char repeated length times, surrounded by
// line breaks. A zero length gives an empty separator.
func (c *Chain) LineOf(char string, length int) *Chain {
	return c.line(char, length)
}

func (c *Chain) line(char string, length int) *Chain {
	text := strings.Repeat(char, max(length, 0))
	layer := c.store.newLayer(false)
	layer.fixed = func() string { return text }
	return c.Newline().Linebreak()
}

// Level1 disables colour on the current layer.
func (c *Chain) Level1() *Chain { return c.ColorLevel(ansi.LevelNone) }

// Level2 limits the current layer to 16 colours.
func (c *Chain) Level2() *Chain { return c.ColorLevel(ansi.LevelBasic) }

// Level3 limits the current layer to 256 colours.
func (c *Chain) Level3() *Chain { return c.ColorLevel(ansi.LevelANSI256) }

// Level4 enables truecolor on the current layer.
func (c *Chain) Level4() *Chain { return c.ColorLevel(ansi.LevelTrueColor) }

// ColorLevel sets the colour level of the current layer.
func (c *Chain) ColorLevel(level ansi.Level) *Chain {
	if !c.f.styling {
		return c
	}
	layer := c.store.current()
	layer.style = layer.style.WithLevel(level)
	return c
}

// Square wraps the current layer in square brackets.
func (c *Chain) Square() *Chain { return c.processor(squareBrackets) }

// Round wraps the current layer in parentheses.
func (c *Chain) Round() *Chain {
	return c.processor(func(s string) string { return "(" + s + ")" })
}

// Mustache wraps the current layer in curly braces.
func (c *Chain) Mustache() *Chain {
	return c.processor(func(s string) string { return "{" + s + "}" })
}

// Linebreak appends a line break to the current layer.
func (c *Chain) Linebreak() *Chain { return c.processor(suffix("\n")) }

// Newline prepends a line break to the current layer.
func (c *Chain) Newline() *Chain {
	return c.processor(func(s string) string { return "\n" + s })
}

// Whitespace appends a space to the current layer.
func (c *Chain) Whitespace() *Chain { return c.processor(suffix(" ")) }

// Colon appends a colon to the current layer.
func (c *Chain) Colon() *Chain { return c.processor(suffix(":")) }

// Hyphen appends a hyphen to the current layer.
func (c *Chain) Hyphen() *Chain { return c.processor(suffix("-")) }

// VerticalBar appends a vertical bar to the current layer.
func (c *Chain) VerticalBar() *Chain { return c.processor(suffix("|")) }

func (c *Chain) processor(fn func(string) string) *Chain {
	c.store.addProcessor(fn)
	return c
}

func squareBrackets(s string) string { return "[" + s + "]" }

func suffix(sym string) func(string) string {
	return func(s string) string { return s + sym }
}

// IndentJSON pretty-prints structured arguments of the current layer.
func (c *Chain) IndentJSON() *Chain {
	c.store.current().indentJSON = true
	return c
}

// Reset clears styling, processors and JSON indentation of the current layer.
// The layer keeps its position.
func (c *Chain) Reset() *Chain {
	c.store.reset()
	return c
}

// Style applies a style by name (see ansi.Names). Unknown names record an
// error returned by the next terminal call.
func (c *Chain) Style(name string) *Chain {
	if !ansi.IsName(name) {
		return c.fail(&MemberError{Name: name})
	}
	return c.style(name)
}

func (c *Chain) style(name string) *Chain {
	if !c.f.styling {
		return c
	}
	c.store.addStyle(name)
	return c
}

// RGB sets a truecolor foreground on the current layer.
func (c *Chain) RGB(r, g, b uint8) *Chain { return c.foreground(ansi.RGB(r, g, b)) }

// Hex sets a foreground from a hex string such as "#DEADED".
func (c *Chain) Hex(color string) *Chain {
	col, err := ansi.Hex(color)
	if err != nil {
		return c.fail(err)
	}
	return c.foreground(col)
}

// ANSI256 sets a foreground from the 256-colour palette.
func (c *Chain) ANSI256(index uint8) *Chain { return c.foreground(ansi.ANSI256(index)) }

// HSL sets a foreground from hue (0-360), saturation and lightness (0-100).
func (c *Chain) HSL(h, s, l float64) *Chain { return c.foreground(ansi.HSL(h, s, l)) }

// HSV sets a foreground from hue (0-360), saturation and value (0-100).
func (c *Chain) HSV(h, s, v float64) *Chain { return c.foreground(ansi.HSV(h, s, v)) }

// HWB sets a foreground from hue (0-360), whiteness and blackness (0-100).
func (c *Chain) HWB(h, w, b float64) *Chain { return c.foreground(ansi.HWB(h, w, b)) }

// Keyword sets a foreground from a CSS colour name such as "orange".
func (c *Chain) Keyword(name string) *Chain {
	col, err := ansi.Keyword(name)
	if err != nil {
		return c.fail(err)
	}
	return c.foreground(col)
}

// BgRGB sets a truecolor background on the current layer.
func (c *Chain) BgRGB(r, g, b uint8) *Chain { return c.background(ansi.RGB(r, g, b)) }

// BgHex sets a background from a hex string.
func (c *Chain) BgHex(color string) *Chain {
	col, err := ansi.Hex(color)
	if err != nil {
		return c.fail(err)
	}
	return c.background(col)
}

// BgKeyword sets a background from a CSS colour name.
func (c *Chain) BgKeyword(name string) *Chain {
	col, err := ansi.Keyword(name)
	if err != nil {
		return c.fail(err)
	}
	return c.background(col)
}

// BgANSI256 sets a background from the 256-colour palette.
func (c *Chain) BgANSI256(index uint8) *Chain { return c.background(ansi.ANSI256(index)) }

// BgHSL sets a background from hue, saturation and lightness.
func (c *Chain) BgHSL(h, s, l float64) *Chain { return c.background(ansi.HSL(h, s, l)) }

// BgHSV sets a background from hue, saturation and value.
func (c *Chain) BgHSV(h, s, v float64) *Chain { return c.background(ansi.HSV(h, s, v)) }

// BgHWB sets a background from hue, whiteness and blackness.
func (c *Chain) BgHWB(h, w, b float64) *Chain { return c.background(ansi.HWB(h, w, b)) }

func (c *Chain) foreground(col ansi.Color) *Chain {
	if !c.f.styling {
		return c
	}
	layer := c.store.current()
	layer.style = layer.style.Foreground(col)
	return c
}

func (c *Chain) background(col ansi.Color) *Chain {
	if !c.f.styling {
		return c
	}
	layer := c.store.current()
	layer.style = layer.style.Background(col)
	return c
}
