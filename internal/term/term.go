// Package term implements the stdout render target.
package term

import (
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or sizing fails.
const DefaultWidth = 80

// clearSequence clears the screen and homes the cursor. Terminals that do
// not honor it are out of scope; a failed write is fatal to the run.
const clearSequence = "\x1b[2J\x1b[1;1H"

// Terminal writes to an output stream, normally os.Stdout. It satisfies
// the sequencer's Target interface.
type Terminal struct {
	out io.Writer
}

// New returns a terminal writing to out. Width detection only works when
// out is an *os.File backed by a tty.
func New(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Stdout returns the terminal for the process's standard output.
func Stdout() *Terminal {
	return New(os.Stdout)
}

// Width reports the current terminal width in columns, falling back to
// DefaultWidth for pipes and redirected output.
func (t *Terminal) Width() int {
	f, ok := t.out.(*os.File)
	if !ok {
		return DefaultWidth
	}
	w, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// WriteLine writes one line followed by a newline.
func (t *Terminal) WriteLine(text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// ClearScreen clears the terminal and moves the cursor home.
func (t *Terminal) ClearScreen() error {
	_, err := io.WriteString(t.out, clearSequence)
	return err
}
