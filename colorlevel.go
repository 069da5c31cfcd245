package chainfmt

import (
	"io"

	"github.com/muesli/termenv"

	"pkt.systems/chainfmt/ansi"
)

// resolveColorLevel decides the starting colour level of a formatter writing
// to w. An explicit ColorLevel wins, then NoColor, then terminal detection;
// the depth itself comes from the environment (NO_COLOR, CLICOLOR_FORCE,
// COLORTERM, TERM).
func resolveColorLevel(w io.Writer, opts Options) ansi.Level {
	if !stylingSupported {
		return ansi.LevelNone
	}
	if opts.ColorLevel != nil {
		return *opts.ColorLevel
	}
	if opts.NoColor {
		return ansi.LevelNone
	}
	if !opts.ForceColor && !isTerminal(w) {
		return ansi.LevelNone
	}
	level := levelFromProfile(termenv.NewOutput(w, termenv.WithTTY(true)).EnvColorProfile())
	if opts.ForceColor && level == ansi.LevelNone {
		level = ansi.LevelBasic
	}
	return level
}

func levelFromProfile(profile termenv.Profile) ansi.Level {
	switch profile {
	case termenv.TrueColor:
		return ansi.LevelTrueColor
	case termenv.ANSI256:
		return ansi.LevelANSI256
	case termenv.ANSI:
		return ansi.LevelBasic
	default:
		return ansi.LevelNone
	}
}
