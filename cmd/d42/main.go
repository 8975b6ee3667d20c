// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// This is the main entry of the d42 CLI tool. There isn't actually much here
// to do except for running the d42 "root" command with all compiled-in
// operation modules, which will parse the CLI args and then hopefully invoke
// the correct operation.

package main

import (
	"os"

	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/command"

	// Pull in all operation modules: they will register themselves, but we
	// need the packages to get included, as otherwise there are no references
	// in the code which could pull them in anyway.
	_ "github.com/d42-tools/d42/cli/module/device"
	_ "github.com/d42-tools/d42/cli/module/ipaddr"
	_ "github.com/d42-tools/d42/cli/module/misc"
	_ "github.com/d42-tools/d42/cli/module/password"
	_ "github.com/d42-tools/d42/cli/module/subnet"
	_ "github.com/d42-tools/d42/cli/module/vlan"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func main() {
	// Establish logger output format in case we're hitting errors, et cetera.
	f := new(prefixed.TextFormatter)
	f.DisableColors = true
	f.ForceFormatting = true
	f.FullTimestamp = true
	f.TimestampFormat = "15:04:05"
	log.SetFormatter(f)

	os.Exit(command.New(cli.PluginCatalog()).Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
