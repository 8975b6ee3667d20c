// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	log "github.com/sirupsen/logrus"
)

// debug enables debug logging when requested via the “--debug” flag.
func debug(opts *cli.Resolved) {
	if !opts.Bool("debug") {
		return
	}
	log.SetLevel(log.DebugLevel)
	log.Debugf("d42 version %s", d42.SemVersion)
}
