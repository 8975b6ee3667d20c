// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package vlan

import (
	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the VLAN module.
const Name = "vlan"

// Exits of the VLAN module.
var Exits = module.Exits{Input: 135, API: 136, Declined: 139}

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
}

// New returns the VLAN module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "search", Flag: "search-vlans", Run: Search,
			Usage: "List all vlans; use --params to refine search"},
		module.Op{Handler: "create", Flag: "create-vlan", Run: Create,
			Usage: "Create a vlan in D42; <number>"},
		module.Op{Handler: "update", Flag: "update-vlan", Run: Update,
			Usage: "Update details of a vlan; <id>"},
		module.Op{Handler: "get", Flag: "get-vlan", Run: Get,
			Usage: "Get a single vlan; requires <vlan_id>"},
		module.Op{Handler: "delete", Flag: "delete-vlan", Run: Delete,
			Usage: "Delete a vlan; requires <vlan_id>"},
	), nil
}

// Search lists the VLANs matching the parameters.
func Search(s *cli.Session) bool {
	return module.Search(s, module.Path("vlans"), Exits.API)
}

// Create creates a new VLAN, unless a VLAN with the same number already
// exists.
func Create(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "number") {
		return false
	}
	exists, ok := module.Exists(s, module.Path("vlans"),
		d42.Params{"number": s.Params["number"]}, "vlans", Name, Exits.Input)
	if !ok {
		return false
	}
	if exists {
		return s.Fail("An existing vlan matched this create request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("vlans"), s.Params, Exits.API)
}

// Update updates the existing VLAN with the ID given in the "id" parameter;
// the ID goes into the query path instead of the updated details.
func Update(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "id") {
		return false
	}
	exists, ok := module.Exists(s, module.Path("vlans"),
		d42.Params{"vlan_id": s.Params["id"]}, "vlans", Name, Exits.Input)
	if !ok {
		return false
	}
	if !exists {
		return s.Fail("No existing vlan was found for this update request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("vlans", s.Params.String("id")),
		s.Params.Without("id"), Exits.API)
}

// Get shows a single VLAN.
func Get(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "vlan_id") {
		return false
	}
	return module.Get(s, module.Path("vlans", s.Params.String("vlan_id")), Exits.API)
}

// Delete deletes a single VLAN.
func Delete(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "vlan_id") {
		return false
	}
	return module.Delete(s, module.Path("vlans", s.Params.String("vlan_id")), Name, Exits)
}
