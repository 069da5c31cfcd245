//go:build windows

package chainfmt

import (
	"io"
	"syscall"

	"golang.org/x/term"
)

const stylingSupported = true

type syscallWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(syscallWriter)
	if !ok {
		return false
	}
	var st uint32
	if syscall.GetConsoleMode(syscall.Handle(f.Fd()), &st) != nil {
		return false
	}
	return true
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(syscallWriter)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
