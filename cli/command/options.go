// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/output"
)

// registerOptions registers the options always present, regardless of the
// modules loaded. The operations group stays empty for the modules to fill.
func registerOptions(opts *cli.Options, out *output.Outputter) error {
	global := []cli.Option{
		{Long: "d42-url", Kind: cli.String, Metavar: "URL", Env: "D42_API_URL",
			Usage: "Device42 API base URL"},
		{Long: "d42-user", Kind: cli.String, Metavar: "USER", Env: "D42_API_USER",
			Usage: "Device42 API user name"},
		{Long: "d42-pass", Kind: cli.String, Metavar: "PASS", Env: "D42_API_PASS",
			Usage: "Device42 API password"},
		{Long: "params", Kind: cli.String, Metavar: "JSON",
			Usage: "API parameters as a JSON object"},
		{Long: "prm", Short: "p", Kind: cli.Append, Metavar: "KEY=VALUE",
			Usage: "API parameter overriding --params; may be repeated"},
		{Long: "out", Kind: cli.Choice, Metavar: "FORMAT", Choices: out.Formats(),
			Default: output.DefaultFormat, Usage: "Output format"},
		{Long: "config", Kind: cli.String, Metavar: "FILE",
			Usage: "YAML configuration file (default ~/.d42/config.yaml)"},
		{Long: "debug", Short: "d", Kind: cli.Bool,
			Usage: "Enable debug output"},
		{Long: "help", Short: "h", Kind: cli.Bool,
			Usage: "Show this help and exit"},
		{Long: "version", Kind: cli.Bool,
			Usage: "Show version and exit"},
	}
	misc := []cli.Option{
		{Long: "yes", Short: "y", Kind: cli.Bool,
			Usage: "Prevents prompting the user for confirmation"},
		{Long: "insecure", Short: "k", Kind: cli.Bool,
			Usage: "Ignore SSL errors when connecting to API"},
		{Long: "verbose", Short: "v", Kind: cli.Bool,
			Usage: "Provide more verbose output from searches"},
	}
	for _, opt := range global {
		if err := opts.Add(cli.GlobalGroup, opt); err != nil {
			return err
		}
	}
	for _, opt := range misc {
		if err := opts.Add(cli.MiscGroup, opt); err != nil {
			return err
		}
	}
	opts.Group(cli.OperationsGroup)
	return nil
}
