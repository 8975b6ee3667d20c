// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package password

import (
	"net/http"

	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	"github.com/d42-tools/d42/output"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the password module.
const Name = "password"

// Exits of the password module.
var Exits = module.Exits{Input: 125, API: 126, Declined: 129}

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
	plugger.Group[cli.CommandExamples]().Register(
		Examples, plugger.WithPlugin(Name))
}

// New returns the password module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "search", Flag: "search-passwords", Run: Search,
			Usage: "Search for passwords within given parameters"},
		module.Op{Handler: "create", Flag: "create-password", Run: Create,
			Usage: "Create a password in D42; <username, password>"},
		module.Op{Handler: "update", Flag: "update-password", Run: Update,
			Usage: "Update details of a password; <id>"},
		module.Op{Handler: "secret", Flag: "get-secret", Run: Secret,
			Usage: "Display a password; single-return query"},
		module.Op{Handler: "delete", Flag: "delete-password", Run: Delete,
			Usage: "Delete a password; <password_id>"},
	), nil
}

// Examples returns the password examples for the d42 command.
func Examples() map[string]string {
	return map[string]string{
		"d42": `  d42 --get-secret -p username=root -p device=zm1.st1
  d42 --get-secret -p id=17 --out raw`,
	}
}

// Search lists the passwords matching the parameters, without revealing
// them.
func Search(s *cli.Session) bool {
	return module.Search(s, module.Path("passwords"), Exits.API)
}

// Create creates a new password.
func Create(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "username", "password") {
		return false
	}
	return module.Post(s, module.Path("passwords"), s.Params, Exits.API)
}

// Update updates the password with the ID given in the "id" parameter.
func Update(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "id") {
		return false
	}
	return module.Post(s, module.Path("passwords"), s.Params, Exits.API)
}

// Secret reveals the single password matching the parameters. The password
// is shown with the "raw" format if the user asked for it, and otherwise only
// on a terminal for a limited time.
func Secret(s *cli.Session) bool {
	path := module.Path("passwords")
	// A failing lookup counts as unusable input, the retrieval below as an
	// API failure.
	res, ok := module.Call(s, http.MethodGet, path+s.Params.Query(), nil, Exits.Input)
	if !ok {
		return false
	}
	matches, ok := passwords(res.Data)
	switch {
	case !ok:
		return s.Fail("Invalid results returned from API", Exits.Input, res.Data)
	case len(matches) > 1:
		return s.Fail("Too many passwords in D42 match this query", Exits.Input, nil)
	case len(matches) < 1:
		return s.Fail("No passwords in D42 match this query", Exits.Input, nil)
	}

	query := s.Params.Without()
	query["plain_text"] = "yes"
	res, ok = module.Call(s, http.MethodGet, path+query.Query(), nil, Exits.API)
	if !ok {
		return false
	}
	matches, ok = passwords(res.Data)
	if !ok || len(matches) != 1 {
		return s.Fail("Invalid results returned from API", Exits.Input, res.Data)
	}
	secret, ok := matches[0].(map[string]any)["password"]
	if !ok {
		return s.Fail("Invalid results returned from API", Exits.Input, nil)
	}
	format := output.Secret
	if s.Out.Format() == output.Raw {
		format = output.Raw
	}
	s.Render(secret, format)
	return true
}

// Delete deletes a single password.
func Delete(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "password_id") {
		return false
	}
	return module.Delete(s, module.Path("passwords", s.Params.String("password_id")), Name, Exits)
}

// passwords returns the list of password objects in a search result.
func passwords(data any) ([]any, bool) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, false
	}
	list, ok := m["Passwords"].([]any)
	if !ok {
		return nil, false
	}
	for _, el := range list {
		if _, ok := el.(map[string]any); !ok {
			return nil, false
		}
	}
	return list, true
}
