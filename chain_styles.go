package chainfmt

// Style methods apply to the current layer and return the chain.

// Bold makes text bold.
func (c *Chain) Bold() *Chain { return c.style("bold") }

// Dim lowers text intensity.
func (c *Chain) Dim() *Chain { return c.style("dim") }

// Italic sets italic text (not widely supported).
func (c *Chain) Italic() *Chain { return c.style("italic") }

// Underline underlines text.
func (c *Chain) Underline() *Chain { return c.style("underline") }

// Overline draws a line above text (not widely supported).
func (c *Chain) Overline() *Chain { return c.style("overline") }

// Inverse swaps foreground and background colours.
func (c *Chain) Inverse() *Chain { return c.style("inverse") }

// Hidden prints text invisibly.
func (c *Chain) Hidden() *Chain { return c.style("hidden") }

// Strikethrough draws a line through text.
func (c *Chain) Strikethrough() *Chain { return c.style("strikethrough") }

// Visible prints text only when the colour level is above none.
func (c *Chain) Visible() *Chain { return c.style("visible") }

// Foreground colours.

func (c *Chain) Black() *Chain { return c.style("black") }
func (c *Chain) Red() *Chain { return c.style("red") }
func (c *Chain) Green() *Chain { return c.style("green") }
func (c *Chain) Yellow() *Chain { return c.style("yellow") }
func (c *Chain) Blue() *Chain { return c.style("blue") }
func (c *Chain) Magenta() *Chain { return c.style("magenta") }
func (c *Chain) Cyan() *Chain { return c.style("cyan") }
func (c *Chain) White() *Chain { return c.style("white") }
func (c *Chain) Gray() *Chain { return c.style("gray") }
func (c *Chain) Grey() *Chain { return c.style("grey") }
func (c *Chain) BlackBright() *Chain { return c.style("blackBright") }
func (c *Chain) RedBright() *Chain { return c.style("redBright") }
func (c *Chain) GreenBright() *Chain { return c.style("greenBright") }
func (c *Chain) YellowBright() *Chain { return c.style("yellowBright") }
func (c *Chain) BlueBright() *Chain { return c.style("blueBright") }
func (c *Chain) MagentaBright() *Chain { return c.style("magentaBright") }
func (c *Chain) CyanBright() *Chain { return c.style("cyanBright") }
func (c *Chain) WhiteBright() *Chain { return c.style("whiteBright") }

// Background colours.

func (c *Chain) BgBlack() *Chain { return c.style("bgBlack") }
func (c *Chain) BgRed() *Chain { return c.style("bgRed") }
func (c *Chain) BgGreen() *Chain { return c.style("bgGreen") }
func (c *Chain) BgYellow() *Chain { return c.style("bgYellow") }
func (c *Chain) BgBlue() *Chain { return c.style("bgBlue") }
func (c *Chain) BgMagenta() *Chain { return c.style("bgMagenta") }
func (c *Chain) BgCyan() *Chain { return c.style("bgCyan") }
func (c *Chain) BgWhite() *Chain { return c.style("bgWhite") }
func (c *Chain) BgGray() *Chain { return c.style("bgGray") }
func (c *Chain) BgGrey() *Chain { return c.style("bgGrey") }
func (c *Chain) BgBlackBright() *Chain { return c.style("bgBlackBright") }
func (c *Chain) BgRedBright() *Chain { return c.style("bgRedBright") }
func (c *Chain) BgGreenBright() *Chain { return c.style("bgGreenBright") }
func (c *Chain) BgYellowBright() *Chain { return c.style("bgYellowBright") }
func (c *Chain) BgBlueBright() *Chain { return c.style("bgBlueBright") }
func (c *Chain) BgMagentaBright() *Chain { return c.style("bgMagentaBright") }
func (c *Chain) BgCyanBright() *Chain { return c.style("bgCyanBright") }
func (c *Chain) BgWhiteBright() *Chain { return c.style("bgWhiteBright") }
