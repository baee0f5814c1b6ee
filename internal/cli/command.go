package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/devkit/internal/config"
	"github.com/idelchi/devkit/internal/integration"
	"github.com/idelchi/devkit/internal/pack"
)

// CLI represents the command-line interface.
type CLI struct {
	version   string
	clipboard pack.Clipboard
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// app holds the state shared by all commands of one invocation.
type app struct {
	version    string
	configFile string
	debug      bool

	cfg       *config.Config
	log       logger
	warn      warner
	clipboard pack.Clipboard
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command and its subcommands.
func (c CLI) Command() *cobra.Command {
	a := &app{version: c.version, clipboard: c.clipboard}
	if a.clipboard == nil {
		a.clipboard = pack.SystemClipboard{}
	}

	root := &cobra.Command{
		Use:   "devkit",
		Short: "Developer utilities for directory sizes, batch commands and package packing",
		Long: heredoc.Doc(`
			devkit bundles three developer utilities:

			  ds    report the largest directories below a path
			  exec  run a command in every (package) subdirectory
			  pack  build and pack a package, then copy the archive path to the clipboard

			Defaults can be set in a YAML config file (.devkit.yml in the working directory,
			or --config) and through DEVKIT_* environment variables, also read from a .env file.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default .devkit.yml if present)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")

	root.AddCommand(
		a.dsCommand(),
		a.execCommand(),
		a.packCommand(),
		a.initCommand(),
		a.versionCommand(),
	)

	return root
}

// setup wires logging to cmd's error stream and loads the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	stderr := cmd.ErrOrStderr()

	a.log = logger{w: stderr, enabled: a.debug}

	a.warn = warner{w: stderr, prefix: "warning: "}
	if isTerminal(stderr) {
		a.warn.prefix = "⚠️  "
	}

	cfg, source, err := config.Resolve(a.configFile, os.LookupEnv)
	if err != nil {
		return err
	}

	if source != "" {
		a.log.printf("[debug]: loaded config from %s\n", source)
	} else {
		a.log.printf("[debug]: using built-in config\n")
	}

	a.cfg = cfg

	return nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.version)

			return err
		},
	}
}

func (a *app) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Output init script for shell usage",
		Long: heredoc.Doc(`
			Prints a zsh snippet defining 'dsz', which ranks the largest directories
			with 'devkit ds' and jumps into the one picked in fzf.

			  eval "$(devkit init)"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := integration.Render()
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return err
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func stylesFor(w io.Writer) styles {
	return newStyles(isTerminal(w))
}
