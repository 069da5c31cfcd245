// Package chainfmt builds styled console output from fluent chains. A chain
// is a sequence of format layers; each layer owns a style, a list of text
// processors (brackets, separators, line breaks) and optionally fixed text
// such as a timestamp or a separator line. Printing zips the layers with the
// supplied arguments, one argument per layer.
//
// # Design overview
//
//   - Layers: Text starts a layer that consumes one argument. Styles and
//     processors chained afterwards configure the most recent layer.
//   - Zip: fixed-text layers consume nothing, layers without an argument
//     produce nothing, nil arguments are dropped and surplus arguments are
//     appended unstyled.
//   - Values: strings print as-is, errors print their message (and stack when
//     created with github.com/pkg/errors), structs, maps and slices print as
//     JSON. IndentJSON switches a layer to indented JSON. ValueFormatters can
//     take over rendering for specific types.
//   - Colour: the starting level is detected once per Formatter from the
//     destination and the environment (see Options.NoColor, Options.ForceColor
//     and Options.ColorLevel). Level1 to Level4 override it per layer.
//   - Timestamps: Time, Date and DateTime prepend a gray, bracketed timestamp
//     that is rendered every time the chain is formatted.
//
// # Usage
//
//	chainfmt.Log().Time().Location().Cyan().Text().Bold().Print("db", "connected")
//	chainfmt.Warn().Text().Yellow().Colon().Print("disk", "92% full")
//
// A retained chain can be printed repeatedly:
//
//	status := chainfmt.Info().Text().Green().Square().Text()
//	status.Print("ok", "cache warm")
//	status.Print("ok", "queue drained")
//
// Members can also be resolved by name, which is how configuration-driven
// layouts are built:
//
//	c, err := chainfmt.Path("text.red.bold")
//	if err != nil {
//		return err
//	}
//	c.Print("alert")
//
// # Integration notes
//
//   - FromEnv builds a Formatter from CHAINFMT_* environment variables,
//     including an OUTPUT destination that may tee to a file.
//   - The ansi subpackage exposes the style engine (ansi.Style, colour levels
//     and colour constructors) for use outside chains.
//   - SetDefault replaces the formatter behind the package-level helpers.
//
// Runnable programs live in the examples/ directory of the repository.
package chainfmt
