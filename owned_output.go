package chainfmt

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ownedCloser is implemented by outputs a formatter must release on Close.
type ownedCloser interface {
	closeOwned() error
}

// ownedOutput is an output file FromEnv opened, possibly teed with a standard
// stream. Only the file is closed, once.
type ownedOutput struct {
	io.Writer
	file io.Closer
	name string

	once sync.Once
	err  error
}

func newOwnedOutput(w io.Writer, file io.Closer, name string) *ownedOutput {
	return &ownedOutput{Writer: w, file: file, name: name}
}

func (o *ownedOutput) closeOwned() error {
	o.once.Do(func() {
		if err := o.file.Close(); err != nil {
			o.err = fmt.Errorf("close chainfmt output %q: %w", o.name, err)
		}
	})
	return o.err
}

// closeOutput closes w only when the formatter owns it. Standard streams and
// caller-supplied writers stay open.
func closeOutput(w io.Writer) error {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return nil
	}
	if c, ok := w.(ownedCloser); ok {
		return c.closeOwned()
	}
	return nil
}
