// Package ansi is the styling engine behind chainfmt chains. It maps the
// familiar chalk style names (bold, red, bgBlueBright, ...) onto ANSI SGR
// open/close pairs and renders colours at a selectable colour level,
// downsampling truecolor to 256 or 16 colours when the level requires it.
//
// A Style is an immutable value: every With/Foreground/Background call returns
// a new Style, so two chain layers never share styling state.
//
//	s, _ := ansi.New(ansi.LevelBasic).With("red")
//	s, _ = s.With("bold")
//	fmt.Println(s.Apply("boom"))
package ansi

import (
	"sort"
	"strconv"
	"strings"
)

// Reset is the ANSI escape code that clears all terminal styling.
const Reset = "\x1b[0m"

// Level is the colour depth a Style renders at.
type Level int

const (
	// LevelNone disables all escape sequences.
	LevelNone Level = iota
	// LevelBasic emits the 16 standard colours.
	LevelBasic
	// LevelANSI256 emits the 256-colour palette.
	LevelANSI256
	// LevelTrueColor emits 24-bit colour.
	LevelTrueColor
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelBasic:
		return "basic"
	case LevelANSI256:
		return "256"
	case LevelTrueColor:
		return "truecolor"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel converts textual colour levels such as "0", "none", "basic",
// "16", "256", "3" or "truecolor" (case insensitive) into a Level.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "none", "off", "no":
		return LevelNone, true
	case "1", "basic", "16", "ansi":
		return LevelBasic, true
	case "2", "256", "ansi256":
		return LevelANSI256, true
	case "3", "truecolor", "24bit", "16m":
		return LevelTrueColor, true
	default:
		return LevelNone, false
	}
}

func (l Level) clamp() Level {
	if l < LevelNone {
		return LevelNone
	}
	if l > LevelTrueColor {
		return LevelTrueColor
	}
	return l
}

type modifier struct {
	open, close int
}

var modifiers = map[string]modifier{
	"bold":          {1, 22},
	"dim":           {2, 22},
	"italic":        {3, 23},
	"underline":     {4, 24},
	"overline":      {53, 55},
	"inverse":       {7, 27},
	"hidden":        {8, 28},
	"strikethrough": {9, 29},
}

var foreground = map[string]uint8{
	"black":         30,
	"red":           31,
	"green":         32,
	"yellow":        33,
	"blue":          34,
	"magenta":       35,
	"cyan":          36,
	"white":         37,
	"blackBright":   90,
	"gray":          90,
	"grey":          90,
	"redBright":     91,
	"greenBright":   92,
	"yellowBright":  93,
	"blueBright":    94,
	"magentaBright": 95,
	"cyanBright":    96,
	"whiteBright":   97,
}

// visibleName only prints text when the level is above LevelNone.
const visibleName = "visible"

// Names returns every style name accepted by Style.With, sorted.
func Names() []string {
	names := make([]string, 0, len(modifiers)+2*len(foreground)+1)
	for name := range modifiers {
		names = append(names, name)
	}
	for name := range foreground {
		names = append(names, name, backgroundName(name))
	}
	names = append(names, visibleName)
	sort.Strings(names)
	return names
}

// IsName reports whether name is accepted by Style.With.
func IsName(name string) bool {
	if name == visibleName {
		return true
	}
	if _, ok := modifiers[name]; ok {
		return true
	}
	_, _, ok := lookupColor(name)
	return ok
}

func backgroundName(name string) string {
	return "bg" + strings.ToUpper(name[:1]) + name[1:]
}

func lookupColor(name string) (code uint8, bg bool, ok bool) {
	if code, ok := foreground[name]; ok {
		return code, false, true
	}
	if len(name) > 2 && strings.HasPrefix(name, "bg") {
		base := strings.ToLower(name[2:3]) + name[3:]
		if code, ok := foreground[base]; ok && backgroundName(base) == name {
			return code, true, true
		}
	}
	return 0, false, false
}

type attrKind uint8

const (
	attrModifier attrKind = iota
	attrForeground
	attrBackground
)

type attr struct {
	kind  attrKind
	mod   modifier
	color Color
}

func (a attr) codes(level Level) (open, close string) {
	switch a.kind {
	case attrModifier:
		return sgr(strconv.Itoa(a.mod.open)), sgr(strconv.Itoa(a.mod.close))
	case attrBackground:
		return sgr(a.color.sequence(level, true)), sgr("49")
	default:
		return sgr(a.color.sequence(level, false)), sgr("39")
	}
}

func sgr(params string) string {
	return "\x1b[" + params + "m"
}

// Style is an immutable set of SGR attributes bound to a colour level.
type Style struct {
	level   Level
	attrs   []attr
	visible bool
}

// New returns an empty style rendering at level.
func New(level Level) Style {
	return Style{level: level.clamp()}
}

// Level returns the colour level the style renders at.
func (s Style) Level() Level {
	return s.level
}

// Plain reports whether the style carries no attributes.
func (s Style) Plain() bool {
	return len(s.attrs) == 0 && !s.visible
}

// WithLevel returns a copy of s rendering at level.
func (s Style) WithLevel(level Level) Style {
	s.level = level.clamp()
	return s
}

// With returns s extended by the named style. ok is false for unknown names.
func (s Style) With(name string) (Style, bool) {
	if name == visibleName {
		s.visible = true
		return s, true
	}
	if mod, ok := modifiers[name]; ok {
		return s.push(attr{kind: attrModifier, mod: mod}), true
	}
	code, bg, ok := lookupColor(name)
	if !ok {
		return s, false
	}
	if bg {
		return s.Background(basic(code)), true
	}
	return s.Foreground(basic(code)), true
}

// Foreground returns s extended with foreground colour c.
func (s Style) Foreground(c Color) Style {
	return s.push(attr{kind: attrForeground, color: c})
}

// Background returns s extended with background colour c.
func (s Style) Background(c Color) Style {
	return s.push(attr{kind: attrBackground, color: c})
}

func (s Style) push(a attr) Style {
	n := len(s.attrs)
	s.attrs = append(s.attrs[:n:n], a)
	return s
}

// Apply wraps text in the style's escape sequences. Closing sequences found
// inside text are replaced with the matching opening sequence so nested
// styled text keeps the outer style after it ends.
func (s Style) Apply(text string) string {
	if s.level == LevelNone {
		if s.visible {
			return ""
		}
		return text
	}
	if len(s.attrs) == 0 {
		return text
	}
	var openAll, closeAll strings.Builder
	closes := make([]string, len(s.attrs))
	opens := make([]string, len(s.attrs))
	for i, a := range s.attrs {
		opens[i], closes[i] = a.codes(s.level)
		openAll.WriteString(opens[i])
	}
	for i := len(closes) - 1; i >= 0; i-- {
		closeAll.WriteString(closes[i])
	}
	if strings.IndexByte(text, '\x1b') >= 0 {
		for i := len(s.attrs) - 1; i >= 0; i-- {
			text = strings.ReplaceAll(text, closes[i], opens[i])
		}
	}
	return openAll.String() + text + closeAll.String()
}
