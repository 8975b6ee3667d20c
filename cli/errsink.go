// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/d42-tools/d42/output"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ErrorRecord is a single failure reported to the user.
type ErrorRecord struct {
	Message    string `json:"error"`
	ExitStatus int    `json:"exit_status"`
	Detail     any    `json:"blob"`
}

// ErrorSink collects failures, rendering each one as it gets recorded. The
// last recorded failure determines the process exit status.
type ErrorSink struct {
	out     *output.Outputter
	records []ErrorRecord
}

// NewErrorSink returns an ErrorSink rendering through out; a nil out only
// collects.
func NewErrorSink(out *output.Outputter) *ErrorSink {
	return &ErrorSink{out: out}
}

// Record a failure and render it in the selected output format. The failure
// stays recorded even if rendering fails, in which case the rendering error
// is returned.
func (e *ErrorSink) Record(message string, status int, detail any) error {
	rec := ErrorRecord{Message: message, ExitStatus: status, Detail: detail}
	e.records = append(e.records, rec)
	log.Debugf("recorded error %q with exit status %d", message, status)
	if e.out == nil {
		return nil
	}
	return e.out.Render(rec, "")
}

// Records returns all failures recorded so far.
func (e *ErrorSink) Records() []ErrorRecord { return slices.Clone(e.records) }

// FinalExitStatus returns the exit status of the last recorded failure, or 0
// if nothing failed.
func (e *ErrorSink) FinalExitStatus() int {
	if len(e.records) == 0 {
		return 0
	}
	return e.records[len(e.records)-1].ExitStatus
}
