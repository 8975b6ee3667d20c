// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package device

import (
	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module"
	"github.com/thediveo/go-plugger/v3"
)

// Name of the device module.
const Name = "device"

// Exits of the device module.
var Exits = module.Exits{Input: 110, API: 111, Declined: 114}

func init() {
	plugger.Group[cli.ModulePlugin]().Register(
		New, plugger.WithPlugin(Name))
	plugger.Group[cli.CommandExamples]().Register(
		Examples, plugger.WithPlugin(Name))
}

// New returns the device module.
func New() (cli.Module, error) {
	return module.New(Name,
		module.Op{Handler: "search", Flag: "search-devices", Run: Search,
			Usage: "List all devices; use --params to refine search"},
		module.Op{Handler: "create", Flag: "create-device", Run: Create,
			Usage: "Create a device in D42; <name>"},
		module.Op{Handler: "update", Flag: "update-device", Run: Update,
			Usage: "Update details of a device; <name>"},
		module.Op{Handler: "get", Flag: "get-device", Run: Get,
			Usage: "Get a single device; <device_id|device_name>"},
		module.Op{Handler: "delete", Flag: "delete-device", Run: Delete,
			Usage: "Delete a device; <device_id>"},
	), nil
}

// Examples returns the device examples for the d42 command.
func Examples() map[string]string {
	return map[string]string{
		"d42": `  d42 --search-devices -p type=virtual -p building=st1
  d42 --get-device -p device_id=449
  d42 --get-device -p device_name=zm1.st1
  d42 --create-device --params '{"name": "zm1.st1", "type": "virtual"}'`,
	}
}

// Search lists the devices matching the parameters; in verbose mode with
// all their details.
func Search(s *cli.Session) bool {
	path := module.Path("devices")
	if s.Verbose() {
		path = module.Path("devices", "all")
	}
	return module.Search(s, path, Exits.API)
}

// Create creates a new device, unless a device with the same name already
// exists.
func Create(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "name") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if exists {
		return s.Fail("A device with this name already exists.", Exits.Input, nil)
	}
	return module.Post(s, module.Path("device"), s.Params, Exits.API)
}

// Update updates an existing device identified by its name.
func Update(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "name") {
		return false
	}
	exists, ok := exists(s)
	if !ok {
		return false
	}
	if !exists {
		return s.Fail("No device with this name currently exists.", Exits.Input, nil)
	}
	return module.Post(s, module.Path("device"), s.Params, Exits.API)
}

// Get shows a single device, identified either by its ID or name.
func Get(s *cli.Session) bool {
	byID := s.Params.Has("device_id")
	byName := s.Params.Has("device_name")
	switch {
	case byID && byName:
		return s.Fail("A device requires either device_id or device_name be specified. Not both.",
			Exits.Input, nil)
	case byID:
		return module.Get(s, module.Path("devices", "id", s.Params.String("device_id")), Exits.API)
	case byName:
		return module.Get(s, module.Path("devices", "name", s.Params.String("device_name")), Exits.API)
	}
	return s.Fail("Required options were not found: device_id or device_name", Exits.Input, nil)
}

// Delete deletes a device identified by its ID.
func Delete(s *cli.Session) bool {
	if !module.Require(s, Exits.Input, "device_id") {
		return false
	}
	return module.Delete(s, module.Path("devices", s.Params.String("device_id")), Name, Exits)
}

func exists(s *cli.Session) (bool, bool) {
	return module.Exists(s, module.Path("devices"),
		d42.Params{"name": s.Params.String("name")}, "Devices", Name, Exits.Input)
}

