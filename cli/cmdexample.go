// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/thediveo/go-plugger/v3"
)

// Examples returns the examples for the specified command contributed by the
// named modules, in the order of the module names. Examples of modules not
// named are left out. The examples of the individual modules are separated by
// empty lines, without a trailing newline.
func Examples(command string, modules []string) string {
	byModule := map[string][]CommandExamples{}
	for _, symbol := range plugger.Group[CommandExamples]().PluginsSymbols() {
		byModule[symbol.Plugin] = append(byModule[symbol.Plugin], symbol.S)
	}
	sources := []CommandExamples{}
	for _, name := range modules {
		sources = append(sources, byModule[name]...)
		delete(byModule, name)
	}
	return joinExamples(command, sources)
}

func joinExamples(command string, sources []CommandExamples) string {
	var examples []string
	for _, example := range sources {
		if text := strings.TrimRight(example()[command], "\n"); text != "" {
			examples = append(examples, text)
		}
	}
	return strings.Join(examples, "\n\n")
}
