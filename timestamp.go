package chainfmt

import (
	"strings"
	"sync"
	"time"

	"github.com/ncruces/go-strftime"
)

// TimestampMode selects what a timestamp layer shows.
type TimestampMode int

const (
	// TimestampNone shows no timestamp.
	TimestampNone TimestampMode = iota
	// TimestampTime shows the time of day.
	TimestampTime
	// TimestampDate shows the calendar date.
	TimestampDate
	// TimestampDateTime shows date and time.
	TimestampDateTime
)

// Default strftime layouts of the timestamp modes.
var (
	DefaultTimeFormat     = "%H:%M:%S"
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultDateTimeFormat = "%Y-%m-%d %H:%M:%S"
)

// String returns the canonical mode name.
func (m TimestampMode) String() string {
	switch m {
	case TimestampTime:
		return "time"
	case TimestampDate:
		return "date"
	case TimestampDateTime:
		return "datetime"
	default:
		return "none"
	}
}

// ParseTimestampMode converts "none", "time", "date" or "datetime" (case
// insensitive) into a TimestampMode.
func ParseTimestampMode(value string) (TimestampMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none", "off", "no", "false":
		return TimestampNone, true
	case "time":
		return TimestampTime, true
	case "date":
		return TimestampDate, true
	case "datetime", "date-time", "date_time":
		return TimestampDateTime, true
	default:
		return TimestampNone, false
	}
}

var cacheableLayouts sync.Map

// timeCache renders timestamps lazily and reuses the rendered string while
// the clock stays within the same second.
type timeCache struct {
	layout    string
	utc       bool
	now       func() time.Time
	cacheable bool

	mu     sync.Mutex
	second int64
	valid  bool
	value  string
}

func newTimeCache(layout string, utc bool, now func() time.Time) *timeCache {
	if now == nil {
		now = time.Now
	}
	return &timeCache{
		layout:    layout,
		utc:       utc,
		now:       now,
		cacheable: isCacheableLayout(layout),
	}
}

// Current formats the clock's current time.
func (c *timeCache) Current() string {
	t := c.now()
	if c.utc {
		t = t.UTC()
	}
	if !c.cacheable {
		return strftime.Format(c.layout, t)
	}
	sec := t.Unix()
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || sec != c.second {
		c.value = strftime.Format(c.layout, t)
		c.second = sec
		c.valid = true
	}
	return c.value
}

func isCacheableLayout(layout string) bool {
	if cached, ok := cacheableLayouts.Load(layout); ok {
		return cached.(bool)
	}
	cacheable := !hasSubSecondPrecision(layout)
	cacheableLayouts.Store(layout, cacheable)
	return cacheable
}

func hasSubSecondPrecision(layout string) bool {
	base := time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)
	// If formatting changes within the same second, layout depends on sub-second precision.
	return strftime.Format(layout, base) != strftime.Format(layout, base.Add(time.Millisecond))
}
