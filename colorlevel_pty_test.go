//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package chainfmt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/creack/pty"

	"pkt.systems/chainfmt/ansi"
)

func captureTTYOutput(t *testing.T, fn func(io.Writer)) string {
	t.Helper()
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, master)
		close(done)
	}()
	fn(slave)
	_ = slave.Close()
	<-done
	_ = master.Close()
	return buf.String()
}

func TestTerminalGetsColour(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")
	var level ansi.Level
	out := captureTTYOutput(t, func(w io.Writer) {
		f := New(w)
		level = f.Level()
		_ = f.Log().Text().Red().Print("alert")
	})
	if level != ansi.LevelANSI256 {
		t.Fatalf("expected 256 colours on a pty, got %v", level)
	}
	if !strings.Contains(out, "\x1b[31malert\x1b[39m") {
		t.Fatalf("expected styled output on a terminal, got %q", out)
	}
}

func TestTerminalNoColor(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")
	out := captureTTYOutput(t, func(w io.Writer) {
		_ = NewWithOptions(w, Options{NoColor: true}).Log().Text().Red().Print("alert")
	})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("did not expect ANSI sequences when NoColor set, got %q", out)
	}
	if !strings.Contains(out, "alert") {
		t.Fatalf("missing output: %q", out)
	}
}

func TestTerminalWidthSetsLineLength(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer master.Close()
	defer slave.Close()
	if err := pty.Setsize(master, &pty.Winsize{Rows: 10, Cols: 33}); err != nil {
		t.Skipf("pty resize unavailable: %v", err)
	}

	f := NewWithOptions(slave, Options{NoColor: true})
	got := mustFormat(t, f.Log().Line())
	if want := "\n" + strings.Repeat("-", 33) + "\n"; got[0] != want {
		t.Fatalf("expected line to span the terminal, got %q", got[0])
	}

	configured := NewWithOptions(slave, Options{NoColor: true, LineLength: 5})
	got = mustFormat(t, configured.Log().Line())
	if got[0] != "\n-----\n" {
		t.Fatalf("configured length should win over terminal width, got %q", got[0])
	}
}
