// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package misc

import (
	_ "embed"
	"strings"

	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	"github.com/d42-tools/d42/output"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the misc module.
const Name = "misc"

//go:embed panda.txt
var panda string

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
}

// New returns the misc module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "panda", Flag: "panda", Run: Panda,
			Usage: "Save the panda bears"},
	), nil
}

// Panda shows a panda.
func Panda(s *cli.Session) bool {
	s.Render(strings.TrimSuffix(panda, "\n"), output.Raw)
	return true
}
