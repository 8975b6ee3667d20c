// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

// Module is an operation module contributing options and operation handlers.
// A module may implement OptionContributor and OperationProvider.
type Module interface {
	Name() string
}

// OptionContributor is implemented by modules registering their own command
// line options, in particular their operation selector flags.
type OptionContributor interface {
	RegisterOptions(opts *Options) error
}

// OperationProvider is implemented by modules offering operations, indexed by
// handler name.
type OperationProvider interface {
	Operations() map[string]Handler
}

// Handler executes a single operation within the specified session. It
// returns false when the operation failed; the failure details have been
// recorded by then.
type Handler func(s *Session) bool

// ModulePlugin defines an exposed plugin symbol type for contributing an
// operation module; it constructs the module and gets called once at startup.
// The module is cataloged under the name of the plugin exposing the symbol.
type ModulePlugin func() (Module, error)

// CommandExamples defines an exposed symbol with CLI examples, indexed by a
// particular command; the d42 root command is named “d42”.
type CommandExamples func() map[string]string
