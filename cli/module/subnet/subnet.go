// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package subnet

import (
	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the subnet module.
const Name = "subnet"

// Exits of the subnet module.
var Exits = module.Exits{Input: 130, API: 131, Declined: 134}

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
}

// New returns the subnet module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "search", Flag: "search-subnets", Run: Search,
			Usage: "List all subnets; use --params to refine search"},
		module.Op{Handler: "create", Flag: "create-subnet", Run: Create,
			Usage: "Create a subnet in D42; <network, mask_bits, name>"},
		module.Op{Handler: "update", Flag: "update-subnet", Run: Update,
			Usage: "Update details of a subnet; <network, mask_bits>"},
		module.Op{Handler: "get", Flag: "get-subnet", Run: Get,
			Usage: "Get a single subnet; <subnet_id>"},
		module.Op{Handler: "delete", Flag: "delete-subnet", Run: Delete,
			Usage: "Delete a subnet; <subnet_id>"},
	), nil
}

// Search lists the subnets matching the parameters.
func Search(s *cli.Session) bool {
	return module.Search(s, module.Path("subnets"), Exits.API)
}

// Create creates a new subnet, unless a subnet with the same network and
// mask already exists.
func Create(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "network", "mask_bits", "name") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if exists {
		return s.Fail("An existing subnet matched this create request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("subnets"), s.Params, Exits.API)
}

// Update updates an existing subnet identified by its network and mask.
func Update(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "network", "mask_bits") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if !exists {
		return s.Fail("No existing subnet was found for this update request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("subnets"), s.Params, Exits.API)
}

// Get shows a single subnet.
func Get(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "subnet_id") {
		return false
	}
	return module.Get(s, module.Path("subnets", s.Params.String("subnet_id")), Exits.API)
}

// Delete deletes a single subnet.
func Delete(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "subnet_id") {
		return false
	}
	return module.Delete(s, module.Path("subnets", s.Params.String("subnet_id")), Name, Exits)
}

func exists(s *cli.Session) (bool, bool) {
	return module.Exists(s, module.Path("subnets"), d42.Params{
		"network":   s.Params["network"],
		"mask_bits": s.Params["mask_bits"],
	}, "subnets", Name, Exits.Input)
}
