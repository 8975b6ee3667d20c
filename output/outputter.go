// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Names of the built-in output formats.
const (
	JSON    = "json"
	YAML    = "yaml"
	PPrint  = "pprint"
	Table   = "table"
	Raw     = "raw"
	DevNull = "devnull"
	Secret  = "secret"
)

// DefaultFormat is the output format used unless the user asks otherwise.
const DefaultFormat = PPrint

// Exit statuses for output failures.
const (
	// ExitUnavailable signals an unavailable output format or a failure while
	// rendering.
	ExitUnavailable = 31
	// ExitSecret signals that the secret renderer refused its input.
	ExitSecret = 32
)

// ErrUnavailable is returned (wrapped) when rendering with a format that
// isn't registered.
var ErrUnavailable = errors.New("requested outputter unavailable")

// ErrSecretRejected is returned (wrapped) by the secret renderer for input it
// cannot show.
var ErrSecretRejected = errors.New("secret renderer rejected data")

// RenderError reports a failure of a specific output format.
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("unable to render data with %q outputter: %s", e.Format, e.Err.Error())
}

func (e *RenderError) Unwrap() error { return e.Err }

// ExitStatus returns the process exit status for a rendering error.
func ExitStatus(err error) int {
	if errors.Is(err, ErrSecretRejected) {
		return ExitSecret
	}
	return ExitUnavailable
}

// Printer renders a single value onto a writer.
type Printer interface {
	Print(w io.Writer, data any) error
}

// PrinterFunc adapts a plain function to the Printer interface.
type PrinterFunc func(w io.Writer, data any) error

// Print renders data by calling f.
func (f PrinterFunc) Print(w io.Writer, data any) error { return f(w, data) }

// Outputter renders data using named printers, defaulting to a selected
// format.
type Outputter struct {
	w          io.Writer
	format     string
	printers   map[string]Printer
	selectable []string
}

// New returns an Outputter writing to w (or stdout if nil) with all built-in
// formats registered and the default format selected.
func New(w io.Writer) *Outputter {
	if w == nil {
		w = os.Stdout
	}
	o := &Outputter{
		w:        w,
		format:   DefaultFormat,
		printers: map[string]Printer{},
	}
	o.Register(JSON, &JSONPrinter{}, true)
	o.Register(PPrint, PrinterFunc(printPretty), true)
	o.Register(DevNull, PrinterFunc(func(io.Writer, any) error { return nil }), true)
	o.Register(Raw, PrinterFunc(printRaw), true)
	o.Register(YAML, PrinterFunc(printYAML), true)
	o.Register(Table, &TablePrinter{}, true)
	o.Register(Secret, &SecretPrinter{}, false)
	return o
}

// Register a printer under the specified format name, replacing any printer
// already registered under this name. Only selectable formats are offered to
// users.
func (o *Outputter) Register(name string, p Printer, selectable bool) {
	o.printers[name] = p
	if selectable && !slices.Contains(o.selectable, name) {
		o.selectable = append(o.selectable, name)
	}
}

// Formats returns the names of the formats users can choose from, in
// registration order.
func (o *Outputter) Formats() []string {
	return slices.Clone(o.selectable)
}

// Format returns the currently selected format.
func (o *Outputter) Format() string { return o.format }

// SetFormat selects the default format for rendering; it must be one of the
// selectable formats.
func (o *Outputter) SetFormat(name string) error {
	if !slices.Contains(o.selectable, name) {
		return fmt.Errorf("%w: %q", ErrUnavailable, name)
	}
	o.format = name
	return nil
}

// Render data using the specified format, or the selected format if format
// is empty.
func (o *Outputter) Render(data any, format string) error {
	if format == "" {
		format = o.format
	}
	p, ok := o.printers[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnavailable, format)
	}
	log.Debugf("rendering %T using %q outputter", data, format)
	if err := p.Print(o.w, data); err != nil {
		return &RenderError{Format: format, Err: err}
	}
	return nil
}
