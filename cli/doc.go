/*
Package cli provides the machinery behind the d42 command: operation modules,
their command line options, and dispatching the selected operation.

# Extension Points

The following plugin “group” extension points are available:

  - [ModulePlugin]: for contributing an operation module. Modules register
    their command line options (in particular their operation selector
    flags) by implementing [OptionContributor], and their operation handlers
    by implementing [OperationProvider].
  - [CommandExamples]: for adding examples to the help of the d42 command.

Module constructors run once at startup, in plugin order. A module failing to
construct gets skipped with a warning, whereas a module failing to register
its options aborts startup. Operation selector flags all store their
“module.handler” token into the same [OperationDest] destination and are
mutually exclusive, so that [Dispatch] finally calls exactly one [Handler].

Handlers get a [Session] giving access to the resolved options, the API
parameters, the API client, and the output facilities. Failures go into the
session's [ErrorSink]; the last recorded failure determines the exit status.

The plugin mechanism is compile-time only. For more details please refer to
[go-plugger].

[go-plugger]: https://github.com/thediveo/go-plugger
*/
package cli
