// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Exit statuses shared by all modules.
const (
	ExitUsage         = 2
	ExitConfig        = 11
	ExitInconsistency = 199
)

// ErrNoOperation is returned when the user didn't select any operation.
var ErrNoOperation = errors.New("no operation selected")

// InconsistencyError reports an operation token that doesn't resolve to a
// loaded module handler. As only loaded modules register operation flags,
// this is an internal error rather than a user error.
type InconsistencyError struct {
	Operation string
	Reason    string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("internal inconsistency for operation %q: %s", e.Operation, e.Reason)
}

// Operation returns the operation token for the specified module handler.
func Operation(module, handler string) string {
	return module + "." + handler
}

// Dispatch calls the handler of the selected operation exactly once.
func Dispatch(opts *Resolved, mods *Modules, s *Session) error {
	op := opts.Operation()
	if op == "" {
		return ErrNoOperation
	}
	module, handler, ok := strings.Cut(op, ".")
	if !ok || module == "" || handler == "" {
		return &InconsistencyError{Operation: op, Reason: "malformed operation"}
	}
	if _, ok := mods.Lookup(module); !ok {
		return &InconsistencyError{Operation: op, Reason: "no such module " + module}
	}
	fn, ok := mods.Handler(module, handler)
	if !ok {
		return &InconsistencyError{Operation: op, Reason: "no such handler " + handler}
	}
	log.Debugf("dispatching %s", op)
	success := fn(s)
	log.Debugf("operation %s succeeded: %t", op, success)
	return nil
}
