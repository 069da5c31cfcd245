//go:build js

package chainfmt

import "io"

// Browser consoles do not interpret ANSI escapes; style members become no-ops.
const stylingSupported = false

func isTerminal(io.Writer) bool {
	return false
}

func terminalWidth(io.Writer) int {
	return 0
}
