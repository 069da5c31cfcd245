package chainfmt

import (
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pkt.systems/chainfmt/ansi"
)

// Route selects the console stream a chain prints to.
type Route int

const (
	// RouteLog prints to the main output (console.log).
	RouteLog Route = iota
	// RouteInfo prints to the main output (console.info).
	RouteInfo
	// RouteWarn prints to the error output (console.warn).
	RouteWarn
	// RouteError prints to the error output (console.error).
	RouteError
)

const routeCount = int(RouteError) + 1

func (r Route) valid() Route {
	if r < RouteLog || int(r) >= routeCount {
		return RouteLog
	}
	return r
}

// String returns the route name.
func (r Route) String() string {
	switch r {
	case RouteInfo:
		return "info"
	case RouteWarn:
		return "warn"
	case RouteError:
		return "error"
	default:
		return "log"
	}
}

// Default line separator settings used by Chain.Line. DefaultLineLength
// applies when the output is not a terminal; on a terminal the line spans its
// width.
const (
	DefaultLineChar   = "-"
	DefaultLineLength = 80
)

// Options controls how a Formatter renders and where it prints.
type Options struct {
	// ErrOutput receives warn and error chains. When nil, the main writer is
	// used for every route.
	ErrOutput io.Writer

	// Console replaces the writer-backed sink entirely. Colour detection still
	// inspects the main writer.
	Console Console

	// NoColor forces styling off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and styles output even when the
	// destination is not a TTY.
	ForceColor bool

	// ColorLevel pins the colour level, skipping detection entirely.
	ColorLevel *ansi.Level

	// Timestamp seeds every chain with a timestamp layer. Defaults to none.
	Timestamp TimestampMode

	// TimeFormat, DateFormat and DateTimeFormat are strftime layouts for the
	// three timestamp modes. Empty values use the package defaults.
	TimeFormat     string
	DateFormat     string
	DateTimeFormat string

	// UTC renders timestamps in UTC.
	UTC bool

	// Now overrides the clock used for timestamps.
	Now func() time.Time

	// LineChar and LineLength set the defaults of Chain.Line. Without a
	// LineLength the line spans the terminal width, or DefaultLineLength.
	LineChar   string
	LineLength int

	// ValueFormatters are consulted, in order, before the built-in value
	// rendering.
	ValueFormatters []ValueFormatter

	// OnWriteFailure is called for every printed line that failed to reach
	// its output. Formatter.WriteStats counts the same failures per route.
	OnWriteFailure func(WriteFailure)
}

// Formatter creates chains that share one output configuration. A Formatter
// is safe for concurrent use; the chains it returns are not.
type Formatter struct {
	console         Console
	outputs         []*ObservedWriter
	terminal        io.Writer
	level           ansi.Level
	styling         bool
	timestamp       TimestampMode
	clocks          map[TimestampMode]*timeCache
	lineChar        string
	lineLength      int
	valueFormatters []ValueFormatter
}

// New returns a Formatter printing every route to w.
func New(w io.Writer) *Formatter {
	return NewWithOptions(w, Options{})
}

// NewWithOptions builds a Formatter with explicit settings.
func NewWithOptions(w io.Writer, opts Options) *Formatter {
	if w == nil {
		w = io.Discard
	}
	errOut := opts.ErrOutput
	if errOut == nil {
		errOut = w
	}
	out := NewObservedWriter(w, RouteLog, opts.OnWriteFailure)
	outputs := []*ObservedWriter{out}
	errObserved := out
	if !sameWriter(errOut, w) {
		errObserved = NewObservedWriter(errOut, RouteError, opts.OnWriteFailure)
		outputs = append(outputs, errObserved)
	}
	console := opts.Console
	if console == nil {
		console = NewConsole(out, errObserved)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	lineChar := opts.LineChar
	if lineChar == "" {
		lineChar = DefaultLineChar
	}
	lineLength := opts.LineLength
	if lineLength < 0 {
		lineLength = 0
	}
	f := &Formatter{
		console:         console,
		outputs:         outputs,
		terminal:        w,
		level:           resolveColorLevel(w, opts),
		styling:         stylingSupported,
		timestamp:       opts.Timestamp,
		lineChar:        lineChar,
		lineLength:      lineLength,
		valueFormatters: append([]ValueFormatter(nil), opts.ValueFormatters...),
		clocks: map[TimestampMode]*timeCache{
			TimestampTime:     newTimeCache(layoutOr(opts.TimeFormat, DefaultTimeFormat), opts.UTC, now),
			TimestampDate:     newTimeCache(layoutOr(opts.DateFormat, DefaultDateFormat), opts.UTC, now),
			TimestampDateTime: newTimeCache(layoutOr(opts.DateTimeFormat, DefaultDateTimeFormat), opts.UTC, now),
		},
	}
	return f
}

func layoutOr(layout, fallback string) string {
	if strings.TrimSpace(layout) == "" {
		return fallback
	}
	return layout
}

// Level returns the colour level new chains start with.
func (f *Formatter) Level() ansi.Level {
	return f.level
}

// Chain returns a fresh chain printing to the log route.
func (f *Formatter) Chain() *Chain {
	return f.newChain(RouteLog)
}

// Log returns a fresh chain printing to the log route.
func (f *Formatter) Log() *Chain { return f.newChain(RouteLog) }

// Info returns a fresh chain printing to the info route.
func (f *Formatter) Info() *Chain { return f.newChain(RouteInfo) }

// Warn returns a fresh chain printing to the warn route.
func (f *Formatter) Warn() *Chain { return f.newChain(RouteWarn) }

// Error returns a fresh chain printing to the error route.
func (f *Formatter) Error() *Chain { return f.newChain(RouteError) }

// Get returns a fresh chain with the named member applied.
func (f *Formatter) Get(name string) (*Chain, error) {
	return f.Chain().Get(name)
}

// Path returns a fresh chain with every member of a dotted path applied,
// e.g. "text.red.bold".
func (f *Formatter) Path(expr string) (*Chain, error) {
	return f.Chain().Path(expr)
}

// WriteStats reports failed writes of lines printed to route.
func (f *Formatter) WriteStats(route Route) WriteStats {
	var total WriteStats
	for _, out := range f.outputs {
		stats := out.Stats(route)
		total.Failures += stats.Failures
		total.ShortWrites += stats.ShortWrites
	}
	return total
}

// Close releases outputs the formatter opened itself (see FromEnv). Standard
// streams and caller-supplied writers are left open.
func (f *Formatter) Close() error {
	var firstErr error
	for _, out := range f.outputs {
		if err := out.closeOwned(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// defaultLineLength is the configured line length, else the width of the
// terminal the formatter prints to, else DefaultLineLength.
func (f *Formatter) defaultLineLength() int {
	if f.lineLength > 0 {
		return f.lineLength
	}
	if width := terminalWidth(f.terminal); width > 0 {
		return width
	}
	return DefaultLineLength
}

func sameWriter(a, b io.Writer) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func (f *Formatter) newChain(route Route) *Chain {
	c := &Chain{
		f:     f,
		store: newLayerStore(ansi.New(f.level)),
		route: route,
	}
	if f.timestamp != TimestampNone {
		c.setTimestamp(f.timestamp)
	}
	return c
}

func (f *Formatter) clock(mode TimestampMode) *timeCache {
	if cache, ok := f.clocks[mode]; ok {
		return cache
	}
	return f.clocks[TimestampDateTime]
}

var (
	defaultOnce      sync.Once
	defaultFormatter atomic.Pointer[Formatter]
)

// Default returns the process-wide formatter used by the package-level
// helpers. Unless replaced with SetDefault it prints log and info chains to
// os.Stdout and warn and error chains to os.Stderr.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter.CompareAndSwap(nil, NewWithOptions(os.Stdout, Options{ErrOutput: os.Stderr}))
	})
	return defaultFormatter.Load()
}

// SetDefault replaces the process-wide formatter. A nil formatter is ignored.
func SetDefault(f *Formatter) {
	if f == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultFormatter.Store(f)
}

// Log returns a fresh chain from the default formatter.
func Log() *Chain { return Default().Log() }

// Info returns a fresh info chain from the default formatter.
func Info() *Chain { return Default().Info() }

// Warn returns a fresh warn chain from the default formatter.
func Warn() *Chain { return Default().Warn() }

// Error returns a fresh error chain from the default formatter.
func Error() *Chain { return Default().Error() }

// Text returns a fresh chain from the default formatter with one text layer.
func Text() *Chain { return Default().Chain().Text() }

// Get resolves a member on a fresh chain from the default formatter.
func Get(name string) (*Chain, error) { return Default().Get(name) }

// Path resolves a dotted member path on a fresh chain from the default
// formatter.
func Path(expr string) (*Chain, error) { return Default().Path(expr) }

// Print formats args on a fresh chain from the default formatter and prints
// them to the log route.
func Print(args ...any) error { return Default().Chain().Print(args...) }

// Format formats args on a fresh chain from the default formatter.
func Format(args ...any) ([]any, error) { return Default().Chain().Format(args...) }

// FormatString formats args on a fresh chain from the default formatter and
// joins the pieces.
func FormatString(args ...any) (string, error) { return Default().Chain().FormatString(args...) }
