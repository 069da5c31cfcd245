package chainfmt

import "io"

// Console receives one rendered line per printed chain.
type Console interface {
	WriteLine(route Route, line string) error
}

// ConsoleFunc adapts a function to the Console interface.
type ConsoleFunc func(route Route, line string) error

// WriteLine calls fn.
func (fn ConsoleFunc) WriteLine(route Route, line string) error {
	return fn(route, line)
}

type writerConsole struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole returns a Console writing log and info lines to out and warn
// and error lines to errOut. A nil errOut falls back to out.
func NewConsole(out, errOut io.Writer) Console {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = out
	}
	return writerConsole{out: out, errOut: errOut}
}

// routeWriter is implemented by outputs that attribute writes to a route.
type routeWriter interface {
	writeRoute(route Route, p []byte) (int, error)
}

func (c writerConsole) WriteLine(route Route, line string) error {
	w := c.out
	if route == RouteWarn || route == RouteError {
		w = c.errOut
	}
	if rw, ok := w.(routeWriter); ok {
		_, err := rw.writeRoute(route, []byte(line+"\n"))
		return err
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}
