// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	log "github.com/sirupsen/logrus"
)

// Exits are the exit statuses of a module's failures.
type Exits struct {
	Input    int // missing or conflicting parameters, existence mismatch
	API      int // failed API call
	Declined int // user declined confirmation
}

// Op describes a single operation of a module together with its selector
// flag.
type Op struct {
	Handler string
	Flag    string
	Usage   string
	Run     cli.Handler
}

// Base is a module offering a fixed set of operations, each selected by its
// own flag in the operations group.
type Base struct {
	name string
	ops  []Op
}

var (
	_ cli.OptionContributor = (*Base)(nil)
	_ cli.OperationProvider = (*Base)(nil)
)

// New returns a module with the specified name and operations.
func New(name string, ops ...Op) *Base {
	return &Base{name: name, ops: ops}
}

// Name returns the module name.
func (b *Base) Name() string { return b.name }

// RegisterOptions registers the operation selector flags.
func (b *Base) RegisterOptions(opts *cli.Options) error {
	for _, op := range b.ops {
		if err := opts.Add(cli.OperationsGroup, cli.Option{
			Long:  op.Flag,
			Dest:  cli.OperationDest,
			Kind:  cli.Const,
			Const: cli.Operation(b.name, op.Handler),
			Usage: op.Usage,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Operations returns the operation handlers.
func (b *Base) Operations() map[string]cli.Handler {
	handlers := make(map[string]cli.Handler, len(b.ops))
	for _, op := range b.ops {
		handlers[op.Handler] = op.Run
	}
	return handlers
}

// Path returns an API query path made from the specified segments, each
// escaped, and with leading and trailing slashes.
func Path(segments ...any) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(fmt.Sprint(segment)))
	}
	b.WriteByte('/')
	return b.String()
}

// Require checks that all the specified parameters are present, otherwise
// records a failure.
func Require(s *cli.Session, status int, keys ...string) bool {
	if s.Params.Has(keys...) {
		return true
	}
	return s.Fail("Required options were not found: "+strings.Join(keys, ", "), status, nil)
}

// Call the API, recording a failed call with the specified status.
func Call(s *cli.Session, method, path string, body d42.Params, status int) (d42.Result, bool) {
	res := s.Call(path, method, body)
	if !res.OK {
		log.Debugf("API call %s %s failed: %s", method, path, res.Message())
		return res, s.Fail("API Error", status, res.Data)
	}
	return res, true
}

// Search queries the collection at path using the parameters and renders the
// resulting data.
func Search(s *cli.Session, path string, status int) bool {
	res, ok := Call(s, http.MethodGet, path+s.Params.Query(), nil, status)
	if !ok {
		return false
	}
	s.Render(res.Data, "")
	return true
}

// Get queries a single resource and renders its data.
func Get(s *cli.Session, path string, status int) bool {
	res, ok := Call(s, http.MethodGet, path, nil, status)
	if !ok {
		return false
	}
	s.Render(res.Data, "")
	return true
}

// Post creates or updates a resource and renders the whole result envelope.
func Post(s *cli.Session, path string, body d42.Params, status int) bool {
	res, ok := Call(s, http.MethodPost, path, body, status)
	if !ok {
		return false
	}
	s.Render(res, "")
	return true
}

// Delete removes a resource after confirmation and renders the resulting
// data. The parameters are sent along.
func Delete(s *cli.Session, path, noun string, exits Exits) bool {
	if !s.Confirmed(fmt.Sprintf("Are you sure you want to delete the given %s?", noun)) {
		return s.Fail("Terminated at user request", exits.Declined, nil)
	}
	res, ok := Call(s, http.MethodDelete, path, s.Params, exits.API)
	if !ok {
		return false
	}
	s.Render(res.Data, "")
	return true
}

// Exists probes the collection at path for resources matching the query; the
// matches are expected in the list under listKey. If the probe fails, it
// gets recorded with the specified status and ok is false.
func Exists(s *cli.Session, path string, query d42.Params, listKey, noun string, status int) (exists bool, ok bool) {
	res := s.Call(path+query.Query(), http.MethodGet, nil)
	if res.OK {
		if data, isMap := res.Data.(map[string]any); isMap {
			if list, isList := data[listKey].([]any); isList {
				log.Debugf("%d existing %s(s) matching %v", len(list), noun, query)
				return len(list) > 0, true
			}
		}
	}
	s.Fail(fmt.Sprintf("Failed to check if %s currently exists.", noun), status, res.Data)
	return false, false
}
