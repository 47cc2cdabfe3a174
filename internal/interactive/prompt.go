// Package interactive provides blocking terminal prompts.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter reads single-line answers from an input stream. A single
// buffered reader is shared across prompts so consecutive answers on the
// same stream are not lost.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing prompt labels to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Default returns a Prompter wired to the process terminal.
func Default() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Prompt prints the label and blocks until the user enters a line. The
// wait is unbounded. Leading and trailing whitespace is trimmed.
func (p *Prompter) Prompt(label string) string {
	fmt.Fprintf(p.w, "%s: ", label)
	line, _ := p.r.ReadString('\n')
	return strings.TrimSpace(line)
}
