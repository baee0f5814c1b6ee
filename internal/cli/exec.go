package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/devkit/internal/config"
	"github.com/idelchi/devkit/internal/dispatch"
	"github.com/idelchi/devkit/internal/walk"
)

func (a *app) execCommand() *cobra.Command {
	var (
		directory   string
		maxDepth    int
		packageName string
	)

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "exec [flags] <command> [args...]",
		Short: "Run a command in every subdirectory",
		Long: heredoc.Doc(`
			Runs <command> through the shell in every subdirectory of --directory,
			one directory at a time. A failing command does not stop the batch.

			Flags go before the command: everything from the first argument on is
			joined with spaces and run as the command, including its own flags.
			Quote the command to use shell operators such as ";" or "&&".

			--maxDepth 0 (the default) only visits the immediate subdirectories.
			Version-control, dependency and build output directories are never entered.
			With --packageName, only directories whose manifest (package.json) names
			the package or depends on it are used.
		`),
		Example: heredoc.Doc(`
			# Show the branch of every checkout below ~/src
			devkit exec -d ~/src git branch --show-current

			# Link a local build into every project using it
			devkit exec --packageName @acme/ui --maxDepth 2 npm link @acme/ui

			# Chain commands through the shell
			devkit exec "git fetch && git status -sb"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			depth := a.cfg.Exec.MaxDepth
			if cmd.Flags().Changed("maxDepth") {
				depth = maxDepth
			}

			if depth < 0 {
				return errors.New("maxDepth cannot be negative")
			}

			root, err := walk.ValidateRoot(directory)
			if err != nil {
				return err
			}

			ctx := contextOf(cmd)
			w := cmd.OutOrStdout()
			st := stylesFor(w)
			command := strings.Join(args, " ")

			walker := walk.New(walk.Options{
				Ignore: walk.NewIgnoreSet(a.cfg.Exec.Ignore...),
				Match:  dispatch.ManifestMatcher(a.cfg.Exec.Manifest, packageName, a.warn),
				Logger: a.warn,
			})

			a.log.printf("[debug]: exec command=%q root=%s depth=%d package=%q manifest=%s\n",
				command, root, depth, packageName, a.cfg.Exec.Manifest)

			nodes, err := walker.Scan(ctx, root, walk.Bounded(depth))
			if err != nil {
				return err
			}

			if len(nodes) == 0 {
				fmt.Fprintf(w, "No qualifying directories found in %s\n", root)

				return nil
			}

			fmt.Fprintf(w, "%sRunning %q in %d %s\n\n", st.icon("🔧"), command, len(nodes), plural(len(nodes), "directory", "directories"))

			var dispatcher dispatch.Dispatcher = dispatch.Sequential{
				Runner:   dispatch.ShellRunner{},
				Observer: &execPrinter{w: w, st: st, total: len(nodes)},
			}

			summary := dispatch.Summarize(dispatcher.DispatchAll(ctx, nodes, command))
			printSummary(w, st, summary)

			if summary.Failed > 0 {
				return ExitError{Code: 1}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", ".", "Directory whose subdirectories are visited")
	cmd.Flags().IntVar(&maxDepth, "maxDepth", defaults.Exec.MaxDepth, "Maximum traversal depth (0=immediate subdirectories)")
	cmd.Flags().StringVar(&packageName, "packageName", "", "Only visit directories whose manifest references this package")
	cmd.Flags().SortFlags = false
	cmd.Flags().SetInterspersed(false)

	return cmd
}
