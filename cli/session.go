// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/output"
	log "github.com/sirupsen/logrus"
)

// Session is everything a handler needs to run its operation: the resolved
// options, the API parameters, the API client and the output facilities.
type Session struct {
	Opts    *Resolved
	Params  d42.Params
	API     d42.API
	Out     *output.Outputter
	Errors  *ErrorSink
	Confirm func(question string) bool
	// Exit terminates the run with the specified status; it must not return.
	// Defaults to the standard logger's exit.
	Exit func(status int)
}

// Fatal logs a critical message and exits immediately with the specified
// status.
func (s *Session) Fatal(status int, format string, args ...any) {
	log.Errorf("CRITICAL: "+format, args...)
	exit := s.Exit
	if exit == nil {
		exit = log.StandardLogger().Exit
	}
	exit(status)
}

// Call the API. Missing credentials are a configuration error and thus end
// the run.
func (s *Session) Call(path, method string, body d42.Params) d42.Result {
	result := s.API.Call(path, method, body)
	if !result.OK && result.Failure == d42.FailureNoCredentials {
		s.Fatal(ExitConfig, "%s", result.Message())
	}
	return result
}

// Render data in the specified format, or in the selected one if format is
// empty. Rendering failures end the run.
func (s *Session) Render(data any, format string) {
	if err := s.Out.Render(data, format); err != nil {
		s.renderFailed(err)
	}
}

// Fail records a failure (rendering it) with the specified exit status and
// always returns false, for handlers to directly return.
func (s *Session) Fail(message string, status int, detail any) bool {
	if err := s.Errors.Record(message, status, detail); err != nil {
		s.renderFailed(err)
	}
	return false
}

// Confirmed reports whether the user agrees to the question, either up front
// by --yes or when asked interactively.
func (s *Session) Confirmed(question string) bool {
	if s.Opts != nil && s.Opts.Bool("yes") {
		return true
	}
	if s.Confirm == nil {
		return false
	}
	return s.Confirm(question)
}

// Verbose reports whether the user asked for verbose results.
func (s *Session) Verbose() bool {
	return s.Opts != nil && s.Opts.Bool("verbose")
}

func (s *Session) renderFailed(err error) {
	var rerr *output.RenderError
	if errors.As(err, &rerr) {
		s.Fatal(output.ExitStatus(err), "%s", err.Error())
		return
	}
	s.Fatal(output.ExitUnavailable, "%s", fmt.Sprint(err))
}
