// Package progress reports how far a batch check has got. Output goes to
// stderr so stdout stays clean for piping, and is only drawn on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the smallest batch worth drawing progress for.
const minItems = 50

// Progress tracks records checked out of a known total.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	draw    bool
}

// New returns a reporter on stderr, drawing only when stderr is a terminal
// and total reaches minItems.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewWriter returns a reporter writing to w. tty selects in-place redraws.
func NewWriter(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{w: w, label: label, total: total, draw: tty && total >= minItems}
}

// Step advances the counter by one and redraws.
func (p *Progress) Step() {
	p.current++
	if !p.draw {
		return
	}
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, p.current*100/p.total)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.draw {
		return
	}
	fmt.Fprintf(p.w, "\r%*s\r", len(p.label)+24, "")
}
