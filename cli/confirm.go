// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultConfirmTries is the number of invalid answers after which the
// Confirmer gives up.
const DefaultConfirmTries = 3

var (
	yesAnswers = []string{"y", "yes", "justdoit"}
	noAnswers  = []string{"n", "no", "notachance"}
)

// Confirmer asks yes/no questions on an interactive terminal.
type Confirmer struct {
	in    *bufio.Reader
	out   io.Writer
	tries int
}

// NewConfirmer returns a Confirmer reading answers from in and writing its
// prompts to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out, tries: DefaultConfirmTries}
}

// Confirm asks the question and returns true only for a positive answer. An
// empty answer, end of input or too many invalid answers count as no.
func (c *Confirmer) Confirm(question string) bool {
	for try := 0; try < c.tries; try++ {
		fmt.Fprintf(c.out, "%s [y/N]: ", question)
		line, err := c.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case slices.Contains(yesAnswers, answer):
			return true
		case answer == "", slices.Contains(noAnswers, answer):
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(c.out, "Please answer yes or no.")
	}
	return false
}
