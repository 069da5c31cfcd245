package chainfmt

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"

	"pkt.systems/chainfmt/ansi"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "dumb")
}

func TestResolveColorLevelPinned(t *testing.T) {
	var buf bytes.Buffer
	got := resolveColorLevel(&buf, Options{NoColor: true, ColorLevel: levelPtr(ansi.LevelANSI256)})
	if got != ansi.LevelANSI256 {
		t.Fatalf("pinned level should win, got %v", got)
	}
}

func TestResolveColorLevelNoColor(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("COLORTERM", "truecolor")
	var buf bytes.Buffer
	if got := resolveColorLevel(&buf, Options{NoColor: true, ForceColor: true}); got != ansi.LevelNone {
		t.Fatalf("NoColor should disable colour, got %v", got)
	}
}

func TestResolveColorLevelNonTTY(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("COLORTERM", "truecolor")
	var buf bytes.Buffer
	if got := resolveColorLevel(&buf, Options{}); got != ansi.LevelNone {
		t.Fatalf("non-terminal writer should not be styled, got %v", got)
	}
}

func TestResolveColorLevelForceColor(t *testing.T) {
	clearColorEnv(t)
	var buf bytes.Buffer
	if got := resolveColorLevel(&buf, Options{ForceColor: true}); got != ansi.LevelBasic {
		t.Fatalf("forced colour on a dumb terminal should fall back to basic, got %v", got)
	}

	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "truecolor")
	if got := resolveColorLevel(&buf, Options{ForceColor: true}); got != ansi.LevelTrueColor {
		t.Fatalf("forced colour should honour COLORTERM, got %v", got)
	}
}

func TestResolveColorLevelForceOverridesNoColorEnv(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	if got := resolveColorLevel(&buf, Options{ForceColor: true}); got != ansi.LevelBasic {
		t.Fatalf("ForceColor should still style with NO_COLOR set, got %v", got)
	}
}

func TestLevelFromProfile(t *testing.T) {
	cases := map[termenv.Profile]ansi.Level{
		termenv.Ascii:     ansi.LevelNone,
		termenv.ANSI:      ansi.LevelBasic,
		termenv.ANSI256:   ansi.LevelANSI256,
		termenv.TrueColor: ansi.LevelTrueColor,
	}
	for profile, want := range cases {
		if got := levelFromProfile(profile); got != want {
			t.Fatalf("profile %v: got %v want %v", profile, got, want)
		}
	}
}
