package chainfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"pkt.systems/chainfmt/ansi"
)

// ErrInvalidMember is wrapped by every MemberError.
var ErrInvalidMember = errors.New("chainfmt: invalid chain member")

// MemberError reports a chain member name that does not exist.
type MemberError struct {
	Name string
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("chainfmt: invalid chain member %q", e.Name)
}

func (e *MemberError) Unwrap() error {
	return ErrInvalidMember
}

// MemberKind groups chain members by what they do.
type MemberKind int

// Member kinds, one per category of the dispatch table.
const (
	MemberRoute MemberKind = iota
	MemberTimestamp
	MemberLayer
	MemberAlias
	MemberDeferred
	MemberLevel
	MemberTemplate
	MemberSymbol
	MemberJSON
	MemberReset
	MemberStyle
)

type member struct {
	kind  MemberKind
	apply func(*Chain) *Chain
	call  func(c *Chain, args []any) ([]any, error)
}

var members = buildMembers()

func buildMembers() map[string]member {
	table := map[string]member{
		"log":   {kind: MemberRoute, apply: (*Chain).Log},
		"info":  {kind: MemberRoute, apply: (*Chain).Info},
		"warn":  {kind: MemberRoute, apply: (*Chain).Warn},
		"error": {kind: MemberRoute, apply: (*Chain).Error},

		"time":        {kind: MemberTimestamp, apply: (*Chain).Time},
		"date":        {kind: MemberTimestamp, apply: (*Chain).Date},
		"dateTime":    {kind: MemberTimestamp, apply: (*Chain).DateTime},
		"noTimestamp": {kind: MemberTimestamp, apply: (*Chain).NoTimestamp},

		"text":      {kind: MemberLayer, apply: (*Chain).Text},
		"title":     {kind: MemberAlias, apply: (*Chain).Title},
		"location":  {kind: MemberAlias, apply: (*Chain).Location},
		"paragraph": {kind: MemberAlias, apply: (*Chain).Paragraph},
		"section":   {kind: MemberAlias, apply: (*Chain).Section},

		"level1": {kind: MemberLevel, apply: (*Chain).Level1},
		"level2": {kind: MemberLevel, apply: (*Chain).Level2},
		"level3": {kind: MemberLevel, apply: (*Chain).Level3},
		"level4": {kind: MemberLevel, apply: (*Chain).Level4},

		"square":   {kind: MemberTemplate, apply: (*Chain).Square},
		"round":    {kind: MemberTemplate, apply: (*Chain).Round},
		"mustache": {kind: MemberTemplate, apply: (*Chain).Mustache},

		"linebreak":   {kind: MemberSymbol, apply: (*Chain).Linebreak},
		"newline":     {kind: MemberSymbol, apply: (*Chain).Newline},
		"whitespace":  {kind: MemberSymbol, apply: (*Chain).Whitespace},
		"colon":       {kind: MemberSymbol, apply: (*Chain).Colon},
		"hyphen":      {kind: MemberSymbol, apply: (*Chain).Hyphen},
		"verticalBar": {kind: MemberSymbol, apply: (*Chain).VerticalBar},

		"indentJson": {kind: MemberJSON, apply: (*Chain).IndentJSON},
		"reset":      {kind: MemberReset, apply: (*Chain).Reset},

		"print":        {kind: MemberDeferred, call: callPrint},
		"format":       {kind: MemberDeferred, call: callFormat},
		"formatString": {kind: MemberDeferred, call: callFormatString},
		"line":         {kind: MemberDeferred, call: callLine},
		"rgb":          {kind: MemberDeferred, call: rgbCall((*Chain).RGB)},
		"bgRgb":        {kind: MemberDeferred, call: rgbCall((*Chain).BgRGB)},
		"hex":          {kind: MemberDeferred, call: stringCall("hex", (*Chain).Hex)},
		"bgHex":        {kind: MemberDeferred, call: stringCall("bgHex", (*Chain).BgHex)},
		"keyword":      {kind: MemberDeferred, call: stringCall("keyword", (*Chain).Keyword)},
		"bgKeyword":    {kind: MemberDeferred, call: stringCall("bgKeyword", (*Chain).BgKeyword)},
		"ansi256":      {kind: MemberDeferred, call: ansi256Call((*Chain).ANSI256)},
		"bgAnsi256":    {kind: MemberDeferred, call: ansi256Call((*Chain).BgANSI256)},
		"hsl":          {kind: MemberDeferred, call: triple("hsl", (*Chain).HSL)},
		"hsv":          {kind: MemberDeferred, call: triple("hsv", (*Chain).HSV)},
		"hwb":          {kind: MemberDeferred, call: triple("hwb", (*Chain).HWB)},
		"bgHsl":        {kind: MemberDeferred, call: triple("bgHsl", (*Chain).BgHSL)},
		"bgHsv":        {kind: MemberDeferred, call: triple("bgHsv", (*Chain).BgHSV)},
		"bgHwb":        {kind: MemberDeferred, call: triple("bgHwb", (*Chain).BgHWB)},
	}
	for _, name := range ansi.Names() {
		styleName := name
		table[name] = member{kind: MemberStyle, apply: func(c *Chain) *Chain { return c.style(styleName) }}
	}
	return table
}

// Member reports the kind of the named chain member.
func Member(name string) (MemberKind, bool) {
	m, ok := members[name]
	return m.kind, ok
}

// Get applies the named member, e.g. "red", "text" or "square". Deferred
// members ("line", "rgb", "hex", "keyword", "format", ...) only record the
// name; the following Call supplies their arguments. Unknown names fail with
// a *MemberError.
func (c *Chain) Get(name string) (*Chain, error) {
	m, ok := members[name]
	if !ok {
		return c, &MemberError{Name: name}
	}
	if m.kind == MemberDeferred {
		c.pending = name
		return c, nil
	}
	c.pending = ""
	return m.apply(c), nil
}

// Path applies every member of a dotted path such as "text.red.bold". It
// stops at the first unknown member.
func (c *Chain) Path(expr string) (*Chain, error) {
	for _, name := range strings.Split(expr, ".") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := c.Get(name); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Call invokes the chain. After a deferred member, args are that member's
// parameters: colour members and "line" return no pieces and leave the chain
// open for more members, "format" and "formatString" return the rendered
// pieces. Without a pending member Call prints args, like Print.
func (c *Chain) Call(args ...any) ([]any, error) {
	name := c.pending
	c.pending = ""
	if name == "" {
		return callPrint(c, args)
	}
	return members[name].call(c, args)
}

func callPrint(c *Chain, args []any) ([]any, error) {
	return nil, c.Print(args...)
}

func callFormat(c *Chain, args []any) ([]any, error) {
	return c.Format(args...)
}

func callFormatString(c *Chain, args []any) ([]any, error) {
	s, err := c.FormatString(args...)
	if err != nil {
		return nil, err
	}
	return []any{s}, nil
}

// callLine applies the formatter defaults only to omitted (or nil)
// arguments; an explicit empty separator or zero length is kept.
func callLine(c *Chain, args []any) ([]any, error) {
	char := c.f.lineChar
	if len(args) > 0 && !isAbsent(args[0]) {
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("chainfmt: line expects a string separator, got %T", args[0])
		}
		char = s
	}
	var length int
	if len(args) > 1 && !isAbsent(args[1]) {
		n, ok := toFloat(args[1])
		if !ok {
			return nil, fmt.Errorf("chainfmt: line expects a numeric length, got %T", args[1])
		}
		length = int(n)
	} else {
		length = c.f.defaultLineLength()
	}
	c.line(char, length)
	return nil, c.err
}

func rgbCall(fn func(*Chain, uint8, uint8, uint8) *Chain) func(*Chain, []any) ([]any, error) {
	return func(c *Chain, args []any) ([]any, error) {
		vals, err := numbers("rgb", args, 3)
		if err != nil {
			return nil, err
		}
		fn(c, channel(vals[0]), channel(vals[1]), channel(vals[2]))
		return nil, c.err
	}
}

func stringCall(name string, fn func(*Chain, string) *Chain) func(*Chain, []any) ([]any, error) {
	return func(c *Chain, args []any) ([]any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("chainfmt: %s expects 1 argument, got %d", name, len(args))
		}
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("chainfmt: %s expects a string, got %T", name, args[0])
		}
		fn(c, s)
		return nil, c.err
	}
}

func ansi256Call(fn func(*Chain, uint8) *Chain) func(*Chain, []any) ([]any, error) {
	return func(c *Chain, args []any) ([]any, error) {
		vals, err := numbers("ansi256", args, 1)
		if err != nil {
			return nil, err
		}
		fn(c, channel(vals[0]))
		return nil, c.err
	}
}

func triple(name string, fn func(*Chain, float64, float64, float64) *Chain) func(*Chain, []any) ([]any, error) {
	return func(c *Chain, args []any) ([]any, error) {
		vals, err := numbers(name, args, 3)
		if err != nil {
			return nil, err
		}
		fn(c, vals[0], vals[1], vals[2])
		return nil, c.err
	}
}

func numbers(name string, args []any, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("chainfmt: %s expects %d arguments, got %d", name, n, len(args))
	}
	vals := make([]float64, n)
	for i, arg := range args {
		v, ok := toFloat(arg)
		if !ok {
			return nil, fmt.Errorf("chainfmt: %s argument %d is not a number: %T", name, i, arg)
		}
		vals[i] = v
	}
	return vals, nil
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
