// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the d42 "root" command with its global CLI flags, running the
// single operation selected by the user.

package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/config"
	"github.com/d42-tools/d42/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandName is the name of the d42 root command, and also the key of its
// examples.
const CommandName = "d42"

// CLI is the d42 command line interface with a particular set of operation
// modules.
type CLI struct {
	catalog cli.Catalog
	names   []string

	// Getenv looks up environment variables for option defaults; nil means
	// os.Getenv.
	Getenv func(string) string
	// Config are additional options for loading the configuration.
	Config []config.Option
}

// New returns a CLI with the named modules from the catalog.
func New(catalog cli.Catalog, names []string) *CLI {
	return &CLI{catalog: catalog, names: names}
}

// exit is the panic value used to end a run early with an exit status.
type exit int

// Run the d42 command with the specified arguments (without the command name
// itself) and returns the exit status.
func (c *CLI) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) (status int) {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	log.SetOutput(stderr)

	defer func() {
		if r := recover(); r != nil {
			code, ok := r.(exit)
			if !ok {
				panic(r)
			}
			status = int(code)
		}
	}()

	out := output.New(stdout)
	session := &cli.Session{
		Out:     out,
		Errors:  cli.NewErrorSink(out),
		Confirm: cli.NewConfirmer(stdin, stderr).Confirm,
		Exit:    func(status int) { panic(exit(status)) },
	}

	mods := cli.LoadModules(c.catalog, c.names)
	rootCmd := &cobra.Command{
		Use:   CommandName,
		Short: "Query and maintain a Device42 CMDB",
		Long: `d42 is a CLI tool for searching, creating, updating, and deleting devices,
IP addresses, subnets, VLANs, and passwords in a Device42 CMDB. Each run
carries out exactly one operation, selected by its operation flag.`,
		Version: d42.SemVersion,
		Args:    cobra.NoArgs,
		// See: https://github.com/spf13/cobra/issues/340
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	opts := cli.NewOptions(rootCmd, c.Getenv)
	if err := registerOptions(opts, out); err != nil {
		session.Fatal(cli.ExitInconsistency, "%s", err.Error())
	}
	if err := opts.InvokeModuleHooks(mods); err != nil {
		session.Fatal(cli.ExitConfig, "%s", err.Error())
	}
	// Set groups of mutually exclusive flags as annotated.
	cli.MarkMutuallyExclusive(rootCmd)
	rootCmd.Example = cli.Examples(CommandName, mods.Names())
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		usage(cmd, opts)
		return nil
	})
	rootCmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	rootCmd.Run = func(cmd *cobra.Command, _ []string) {
		c.run(opts.Resolve(), mods, session)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", CommandName)
		return cli.ExitUsage
	}
	return session.Errors.FinalExitStatus()
}

// run carries out the selected operation, after merging command line flags
// with the configuration and setting up the API client.
func (c *CLI) run(opts *cli.Resolved, mods *cli.Modules, s *cli.Session) {
	s.Opts = opts
	debug(opts)

	cfg, err := config.NewLoader(append(
		[]config.Option{config.WithConfigFile(opts.String("config"))}, c.Config...)...).Load()
	if err != nil {
		s.Fatal(cli.ExitConfig, "Unable to load configuration: %s", err.Error())
	}

	params, err := d42.ParseParams(opts.String("params"), opts.Strings("prm"))
	if err != nil {
		s.Fatal(cli.ExitConfig, "%s", err.Error())
	}
	s.Params = params

	format := opts.String("out")
	if !opts.Changed("out") && cfg.Output != "" {
		format = cfg.Output
	}
	if err := s.Out.SetFormat(format); err != nil {
		s.Fatal(cli.ExitConfig, "%s", err.Error())
	}

	client, err := d42.NewClient(&d42.ClientOptions{
		URL:                either(opts.String("d42_url"), cfg.URL),
		Version:            cfg.Version,
		User:               either(opts.String("d42_user"), cfg.User),
		Password:           either(opts.String("d42_pass"), cfg.Password),
		InsecureSkipVerify: opts.Bool("insecure") || cfg.Insecure,
	})
	if err != nil {
		s.Fatal(cli.ExitConfig, "%s", err.Error())
	}
	s.API = client

	err = cli.Dispatch(opts, mods, s)
	var ierr *cli.InconsistencyError
	switch {
	case errors.Is(err, cli.ErrNoOperation):
		s.Fatal(cli.ExitConfig, "No operation selected")
	case errors.As(err, &ierr):
		s.Fatal(cli.ExitInconsistency, "%s", ierr.Error())
	}
}

// usage writes the usage of the d42 command, with its options in groups.
func usage(cmd *cobra.Command, opts *cli.Options) {
	w := cmd.OutOrStderr()
	fmt.Fprintf(w, "Usage:\n  %s [options]\n", cmd.CommandPath())
	opts.Usage(w)
	if cmd.HasExample() {
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
	}
}

func either(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
