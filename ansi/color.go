package ansi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/colornames"
)

type colorKind uint8

const (
	colorBasic colorKind = iota
	colorANSI256
	colorRGB
)

// Color is a foreground or background colour independent of colour level.
// It is downsampled when rendered at a level that cannot express it.
type Color struct {
	kind    colorKind
	code    uint8
	r, g, b uint8
}

func basic(code uint8) Color {
	return Color{kind: colorBasic, code: code}
}

// RGB returns a 24-bit colour.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// ANSI256 returns a colour from the 8-bit palette.
func ANSI256(index uint8) Color {
	return Color{kind: colorANSI256, code: index}
}

// Hex parses "#RRGGBB" or "#RGB"; the leading '#' is optional.
func Hex(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return Color{}, fmt.Errorf("ansi: invalid hex colour %q: %w", value, err)
	}
	return fromColorful(c), nil
}

// HSL builds a colour from hue (0-360), saturation and lightness (0-100).
func HSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(h, s/100, l/100))
}

// HSV builds a colour from hue (0-360), saturation and value (0-100).
func HSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s/100, v/100))
}

// HWB builds a colour from hue (0-360), whiteness and blackness (0-100).
func HWB(h, w, b float64) Color {
	w, b = clampUnit(w/100), clampUnit(b/100)
	if w+b >= 1 {
		gray := w / (w + b)
		return fromColorful(colorful.Color{R: gray, G: gray, B: gray})
	}
	v := 1 - b
	return fromColorful(colorful.Hsv(h, 1-w/v, v))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// RGB255 returns the 8-bit channels of an RGB colour; ok is false for palette
// colours.
func (c Color) RGB255() (r, g, b uint8, ok bool) {
	if c.kind != colorRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// Keyword resolves a CSS colour name such as "orange" or "RebeccaPurple".
func Keyword(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("ansi: unknown colour keyword %q", name)
	}
	return RGB(c.R, c.G, c.B), nil
}

// sequence returns the SGR parameters for c at level. Palette reduction
// below truecolor follows termenv's nearest-colour conversion.
func (c Color) sequence(level Level, bg bool) string {
	prefix := "38"
	if bg {
		prefix = "48"
	}
	switch c.kind {
	case colorRGB:
		if level == LevelTrueColor {
			return prefix + ";2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
		}
		hex := termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
		return profile(level).Convert(hex).Sequence(bg)
	case colorANSI256:
		return profile(level).Convert(termenv.ANSI256Color(c.code)).Sequence(bg)
	default:
		if bg {
			return strconv.Itoa(int(c.code) + 10)
		}
		return strconv.Itoa(int(c.code))
	}
}

func profile(level Level) termenv.Profile {
	if level >= LevelANSI256 {
		return termenv.ANSI256
	}
	return termenv.ANSI
}
