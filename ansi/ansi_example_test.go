package ansi_test

import (
	"fmt"

	"pkt.systems/chainfmt/ansi"
)

func ExampleStyle_Apply() {
	s, _ := ansi.New(ansi.LevelBasic).With("red")
	s, _ = s.With("bold")
	fmt.Printf("%q\n", s.Apply("boom"))

	// Output: "\x1b[31m\x1b[1mboom\x1b[22m\x1b[39m"
}

func ExampleHex() {
	c, err := ansi.Hex("#DEADED")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", ansi.New(ansi.LevelTrueColor).Foreground(c).Apply("x"))

	// Output: "\x1b[38;2;222;173;237mx\x1b[39m"
}
