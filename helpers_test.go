package chainfmt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"pkt.systems/chainfmt/ansi"
)

func levelPtr(level ansi.Level) *ansi.Level {
	return &level
}

// newBasicFormatter pins the colour level to 16 colours so escapes are
// deterministic regardless of the test environment.
func newBasicFormatter(t *testing.T, opts Options) (*Formatter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	if opts.ColorLevel == nil {
		opts.ColorLevel = levelPtr(ansi.LevelBasic)
	}
	return NewWithOptions(&buf, opts), &buf
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func stripANSIString(s string) string {
	var b strings.Builder
	sz := len(s)
	for i := 0; i < sz; i++ {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= sz || s[i+1] != '[' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < sz && s[j] != 'm' {
			j++
		}
		if j >= sz {
			break
		}
		i = j
	}
	return b.String()
}

func mustFormat(t *testing.T, c *Chain, args ...any) []any {
	t.Helper()
	got, err := c.Format(args...)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	return got
}
