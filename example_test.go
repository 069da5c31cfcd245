package chainfmt_test

import (
	"fmt"
	"os"
	"time"

	"pkt.systems/chainfmt"
	"pkt.systems/chainfmt/ansi"
)

func ExampleChain_Print() {
	f := chainfmt.NewWithOptions(os.Stdout, chainfmt.Options{NoColor: true})
	f.Log().Location().Cyan().Text().Bold().Colon().Print("db", "connected", "in", 12*time.Millisecond)
	// Output: [db] connected: in 12ms
}

func ExampleChain_Format() {
	level := ansi.LevelBasic
	f := chainfmt.NewWithOptions(os.Stdout, chainfmt.Options{ColorLevel: &level})
	pieces, _ := f.Log().Text().Red().Text().Blue().Format(1, nil, 2, 3)
	fmt.Printf("%#v\n", pieces)
	// Output: []interface {}{"\x1b[31m1\x1b[39m", 2, 3}
}

func ExampleChain_IndentJSON() {
	f := chainfmt.NewWithOptions(os.Stdout, chainfmt.Options{NoColor: true})
	f.Log().Paragraph().Text().IndentJSON().Print("payload:", map[string]any{"id": 7, "ok": true})
	// Output:
	// payload:
	//  {
	//   "id": 7,
	//   "ok": true
	// }
}

func ExampleChain_Time() {
	now := time.Date(2025, time.October, 12, 9, 30, 0, 0, time.UTC)
	f := chainfmt.NewWithOptions(os.Stdout, chainfmt.Options{
		NoColor: true,
		UTC:     true,
		Now:     func() time.Time { return now },
	})
	f.Log().Time().Text().Print("tick")
	f.Log().Date().Text().Print("tock")
	// Output:
	// [09:30:00] tick
	// [2025-10-12] tock
}

func ExamplePath() {
	chainfmt.SetDefault(chainfmt.NewWithOptions(os.Stdout, chainfmt.Options{NoColor: true}))
	c, err := chainfmt.Path("text.bold.square.text")
	if err != nil {
		fmt.Println(err)
		return
	}
	c.Print("ok", "resolved")
	_, err = chainfmt.Get("notExist")
	fmt.Println(err)
	// Output:
	// [ok] resolved
	// chainfmt: invalid chain member "notExist"
}
