// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// DefaultSecretTimeout is the number of seconds a secret stays on screen.
const DefaultSecretTimeout = 7

// ANSI escape sequence for clearing the screen and homing the cursor.
const clearScreen = "\x1b[2J\x1b[H"

// SecretPrinter shows a single-line secret on a terminal, counts down, and
// then clears the screen again. It refuses anything that isn't a single line
// of text, as well as writers that aren't terminals.
type SecretPrinter struct {
	// Timeout in seconds; zero means DefaultSecretTimeout.
	Timeout int
	// IsTerminal reports whether w is a terminal; nil means checking for an
	// *os.File connected to a terminal.
	IsTerminal func(w io.Writer) bool
	// Sleep pauses between countdown ticks; nil means time.Sleep.
	Sleep func(time.Duration)
}

// Print shows the secret.
func (p *SecretPrinter) Print(w io.Writer, data any) error {
	secret, ok := data.(string)
	if !ok {
		return fmt.Errorf("%w: data passed to renderer was invalid", ErrSecretRejected)
	}
	if strings.ContainsAny(secret, "\r\n") {
		return fmt.Errorf("%w: this renderer does not support newlines", ErrSecretRejected)
	}
	isTerminal := p.IsTerminal
	if isTerminal == nil {
		isTerminal = isTerminalFile
	}
	if !isTerminal(w) {
		return fmt.Errorf("%w: output is not a terminal", ErrSecretRejected)
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultSecretTimeout
	}

	if _, err := fmt.Fprintf(w, "%s\n  Secret:\n\n     %s\n\n", clearScreen, secret); err != nil {
		return err
	}
	for remaining := timeout; remaining > 0; remaining-- {
		if _, err := fmt.Fprintf(w, "\r Timeout: %d ", remaining); err != nil {
			return err
		}
		sleep(time.Second)
	}
	_, err := io.WriteString(w, clearScreen)
	return err
}

func isTerminalFile(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
