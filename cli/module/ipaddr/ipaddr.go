// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ipaddr

import (
	"net/http"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	log "github.com/sirupsen/logrus"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the IP address module.
const Name = "ipaddr"

// Exits of the IP address module.
var Exits = module.Exits{Input: 115, API: 116, Declined: 119}

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
	plugger.Group[cli.CommandExamples]().Register(
		Examples, plugger.WithPlugin(Name))
}

// New returns the IP address module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "search", Flag: "search-ips", Run: Search,
			Usage: "List all ips; use --params to refine search"},
		module.Op{Handler: "create", Flag: "create-ip", Run: Create,
			Usage: "Create a ip in D42; <ipaddress>"},
		module.Op{Handler: "update", Flag: "update-ip", Run: Update,
			Usage: "Update details of a ip; <ipaddress>"},
		module.Op{Handler: "get", Flag: "get-ip", Run: Get,
			Usage: "Get a single ip; <ip_id>"},
		module.Op{Handler: "delete", Flag: "delete-ip", Run: Delete,
			Usage: "Delete a ip; <ip_id>"},
		module.Op{Handler: "request", Flag: "request-ip", Run: Request,
			Usage: "Reserve/suggest IP address in given subnet, subnet_id; <reserve_ip>"},
	), nil
}

// Examples returns the IP address examples for the d42 command.
func Examples() map[string]string {
	return map[string]string{
		"d42": `  d42 --search-ips -p subnet=10.0.0.0/24
  d42 --request-ip -p subnet_id=12 -p reserve_ip=yes`,
	}
}

// Search lists the IP addresses matching the parameters.
func Search(s *cli.Session) bool {
	return module.Search(s, module.Path("ips"), Exits.API)
}

// Create creates a new IP address, unless it already exists.
func Create(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "ipaddress") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if exists {
		return s.Fail("An existing ip matched this create request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("ips"), s.Params, Exits.API)
}

// Update updates an existing IP address.
func Update(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "ipaddress") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if !exists {
		return s.Fail("No existing ip was found for this update request", Exits.Input, nil)
	}
	return module.Post(s, module.Path("ips"), s.Params, Exits.API)
}

// Get shows a single IP address.
func Get(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "ip_id") {
		return false
	}
	return module.Get(s, module.Path("ips", s.Params.String("ip_id")), Exits.API)
}

// Delete deletes a single IP address.
func Delete(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "ip_id") {
		return false
	}
	return module.Delete(s, module.Path("ips", s.Params.String("ip_id")), "ip", Exits)
}

// Request suggests, and optionally reserves, a free IP address in a subnet.
func Request(s *cli.Session) bool {
	if !s.Params.Has("subnet_id") && !s.Params.Has("subnet") && !s.Params.Has("name") {
		return s.Fail("Need one of: subnet_id, subnet, name", Exits.Input, nil)
	}
	if !s.Params.Has("reserve_ip") {
		log.Warn("Parameter reserve_ip was missing; default does not reserve")
	}
	res, ok := module.Call(s, http.MethodPost, module.Path("suggest_ip"), s.Params, Exits.API)
	if !ok {
		return false
	}
	s.Render(res.Data, "")
	return true
}

func exists(s *cli.Session) (bool, bool) {
	return module.Exists(s, module.Path("ips"),
		d42.Params{"ip": s.Params.String("ipaddress")}, "ips", "ip", Exits.Input)
}
