// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package moduletest provides a scripted API and session for testing
// operation handlers.
package moduletest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/output"
)

// Call is a single API call as seen by the scripted API.
type Call struct {
	Path   string
	Method string
	Body   d42.Params
}

// API answers calls with its scripted results in order, and with Default
// when running out of them.
type API struct {
	Calls   []Call
	Results []d42.Result
	Default d42.Result
}

var _ d42.API = (*API)(nil)

// Call records the call and returns the next scripted result.
func (a *API) Call(path, method string, body d42.Params) d42.Result {
	a.Calls = append(a.Calls, Call{Path: path, Method: method, Body: body})
	if len(a.Results) == 0 {
		return a.Default
	}
	res := a.Results[0]
	a.Results = a.Results[1:]
	return res
}

// Methods returns the "METHOD path" of all calls so far.
func (a *API) Methods() []string {
	calls := make([]string, 0, len(a.Calls))
	for _, call := range a.Calls {
		calls = append(calls, call.Method+" "+call.Path)
	}
	return calls
}

// OK returns a successful result with the specified data.
func OK(data any) d42.Result {
	return d42.Result{OK: true, Data: data, StatusCode: 200}
}

// Failed returns a result for a failed API call with the specified HTTP
// status code.
func Failed(code int) d42.Result {
	return d42.Result{
		Data: map[string]any{
			"error_message": fmt.Sprintf("Error accessing API (%d)", code),
		},
		Failure: d42.FailureStatus,
	}
}

// Exited is the panic value of a session exit.
type Exited int

// Session is a handler session with a scripted API, rendering JSON into a
// buffer.
type Session struct {
	*cli.Session
	API    *API
	Output *bytes.Buffer
	// Asked are the confirmation questions asked so far.
	Asked []string
}

// NewSession returns a session for the specified parameters and options; the
// user answers all confirmations with answer. Exiting the session panics with
// an Exited value.
func NewSession(params d42.Params, opts map[string]any, answer bool) *Session {
	if params == nil {
		params = d42.Params{}
	}
	buff := &bytes.Buffer{}
	out := output.New(buff)
	if err := out.SetFormat(output.JSON); err != nil {
		panic(err)
	}
	api := &API{}
	s := &Session{API: api, Output: buff}
	s.Session = &cli.Session{
		Opts:   cli.NewResolved(opts),
		Params: params,
		API:    api,
		Out:    out,
		Errors: cli.NewErrorSink(out),
		Confirm: func(question string) bool {
			s.Asked = append(s.Asked, question)
			return answer
		},
		Exit: func(status int) { panic(Exited(status)) },
	}
	return s
}

// ErrorMessages returns the messages of all recorded errors.
func (s *Session) ErrorMessages() []string {
	msgs := []string{}
	for _, rec := range s.Errors.Records() {
		msgs = append(msgs, rec.Message)
	}
	return msgs
}

// Rendered returns the output as rendered so far, without surrounding
// whitespace.
func (s *Session) Rendered() string {
	return strings.TrimSpace(s.Output.String())
}
