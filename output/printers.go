// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/thediveo/klo"
	"gopkg.in/yaml.v3"
)

// JSONPrinter renders machine-readable JSON using a klo value printer.
type JSONPrinter struct {
	prn klo.ValuePrinter
}

// Print renders data as JSON.
func (p *JSONPrinter) Print(w io.Writer, data any) error {
	if p.prn == nil {
		prn, err := klo.PrinterFromFlag("json", &klo.Specs{})
		if err != nil {
			return err
		}
		p.prn = prn
	}
	return p.prn.Fprint(w, data)
}

// printYAML renders data as a YAML document with two-space indentation.
func printYAML(w io.Writer, data any) error {
	v, err := generic(data)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// printPretty renders data in (pretty) Go syntax.
func printPretty(w io.Writer, data any) error {
	v, err := generic(data)
	if err != nil {
		return err
	}
	_, err = pretty.Fprintf(w, "%# v\n", v)
	return err
}

// printRaw renders strings as-is and everything else in its default Go
// formatting.
func printRaw(w io.Writer, data any) error {
	_, err := fmt.Fprintln(w, data)
	return err
}
