package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/paramdecl/internal/cli"
	"github.com/toyz/paramdecl/internal/config"
	"github.com/toyz/paramdecl/internal/utils"
)

// errDrift is returned by check when generated files are out of date
var errDrift = errors.New("generated files are out of date, run paramgen generate")

type app struct {
	out, errOut io.Writer

	configFile string
	dir        string
	strategy   string
	verbose    bool
	quiet      bool

	diagnostics *utils.DiagnosticSystem
	reported    bool
}

// run executes the command line in args. Errors cobra returns before a
// command reports them, such as flag conflicts or unknown subcommands, are
// reported here.
func run(args []string, out, errOut io.Writer) error {
	a := &app{out: out, errOut: errOut}
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil && !a.reported {
		if a.diagnostics == nil {
			a.diagnostics = a.newDiagnostics()
		}
		a.fail(err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	out, errOut := a.out, a.errOut

	root := &cobra.Command{
		Use:   "paramgen",
		Short: "Generate request-parameter constructors",
		Long: `paramgen renders the Path, Query, Header, Cookie, Body, Form and File
constructors from the parameter catalog. Every parameter is documented once
in the catalog; the render strategy decides whether its documentation is
inlined into every constructor or attached to a shared type alias.

Examples:
  paramgen generate                     Render into the configured output directory
  paramgen generate --strategy inline   Render without type aliases
  paramgen check                        Fail when generated files are out of date
  paramgen describe Header              Show the parameters of Header as YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose && a.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			a.diagnostics = a.newDiagnostics()
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is paramgen.yaml in --dir)")
	flags.StringVar(&a.dir, "dir", ".", "directory to resolve the config file and go.mod from")
	flags.StringVar(&a.strategy, "strategy", "", "render strategy: inline or alias (overrides the config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(a.generateCommand(), a.checkCommand(), a.describeCommand())
	return root
}

func (a *app) newDiagnostics() *utils.DiagnosticSystem {
	var d *utils.DiagnosticSystem
	switch {
	case a.quiet:
		d = utils.NewQuietDiagnostics()
	case a.verbose:
		d = utils.NewVerboseDiagnostics()
	default:
		d = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if a.out != os.Stdout || a.errOut != os.Stderr {
		d.SetOutput(a.out, a.errOut)
	}
	return d
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(a.dir, a.configFile)
	if err != nil {
		return nil, err
	}
	if a.strategy != "" {
		cfg.Render.Strategy = a.strategy
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if a.verbose {
		a.diagnostics.Subsection("Configuration")
		if cfg.Source != "" {
			a.diagnostics.List("Config file: %s", cfg.Source)
		}
		a.diagnostics.List("Module: %s", cfg.Module)
		a.diagnostics.List("Output: %s (package %s)", cfg.Output.Dir, cfg.Output.Package)
		a.diagnostics.List("Strategy: %s", cfg.Render.Strategy)
	}
	return cfg, nil
}

// fail reports err through diagnostics and hands it back to cobra
func (a *app) fail(err error) error {
	a.diagnostics.ReportError(err)
	a.reported = true
	return err
}

func (a *app) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Render the constructors into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.diagnostics.Section("paramgen")

			cfg, err := a.loadConfig()
			if err != nil {
				return a.fail(err)
			}

			generator := cli.NewGenerator(a.diagnostics)
			if err := generator.Run(cfg); err != nil {
				return a.fail(err)
			}

			summary := generator.Summary()
			stats := summary.Stats.Map()
			stats["constructors"] = summary.Constructors
			stats["descriptors"] = summary.Descriptors
			a.diagnostics.Summary("Generation complete", stats)

			if a.verbose {
				a.diagnostics.Subsection("Generated Files")
				for _, file := range summary.GeneratedFiles {
					a.diagnostics.List("%s", file)
				}
				for _, file := range summary.RemovedFiles {
					a.diagnostics.List("%s (removed)", file)
				}
			}
			a.diagnostics.Success("Constructors written to %s", cfg.Output.Dir)
			return nil
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the generated files are up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return a.fail(err)
			}

			drift, err := cli.NewGenerator(a.diagnostics).Check(cfg)
			if err != nil {
				return a.fail(err)
			}
			if len(drift) == 0 {
				a.diagnostics.Success("Generated files are up to date")
				return nil
			}

			for _, d := range drift {
				a.diagnostics.Warn("%s", d)
			}
			return a.fail(errDrift)
		},
	}
}

func (a *app) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [constructor]",
		Short: "Print the catalog, or one constructor, as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return a.fail(err)
			}

			cat, set, err := cli.Synthesize(cfg)
			if err != nil {
				return a.fail(err)
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			out, err := cli.Describe(cat, set, name)
			if err != nil {
				return a.fail(err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
