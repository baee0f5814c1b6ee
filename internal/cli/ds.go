package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/devkit/internal/config"
	"github.com/idelchi/devkit/internal/dirstat"
	"github.com/idelchi/devkit/internal/walk"
)

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json", "plain"}

func (a *app) dsCommand() *cobra.Command {
	var (
		maxDepth   int
		topCount   int
		minSizeStr string
		output     string
	)

	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "ds [directory]",
		Short: "Report the largest directories below a path",
		Long: heredoc.Doc(`
			Walks the directory tree below [directory] (default: current directory),
			computes the recursive size of every subdirectory and lists the largest ones.

			The total size covers every discovered directory, not only the listed ones.
			Directories that cannot be read are skipped with a warning.
		`),
		Example: heredoc.Doc(`
			# Top 10 directories, two levels deep
			devkit ds

			# Top 20 directories anywhere below ~/src
			devkit ds ~/src --maxDepth 0 --topCount 20
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			depth := a.cfg.DS.MaxDepth
			if cmd.Flags().Changed("maxDepth") {
				depth = maxDepth
			}

			top := a.cfg.DS.TopCount
			if cmd.Flags().Changed("topCount") {
				top = topCount
			}

			if depth < 0 {
				return errors.New("maxDepth cannot be negative")
			}

			if top <= 0 {
				return errors.New("topCount must be greater than 0")
			}

			output = strings.ToLower(output)
			if !slices.Contains(allowedOutputs, output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
			}

			minSize, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options := dirstat.Options{
				Path:    ".",
				Depth:   dsDepth(depth),
				TopN:    top,
				MinSize: int64(minSize), //nolint:gosec // Size conversion from humanize is safe
			}

			if len(args) > 0 {
				options.Path = args[0]
			}

			return a.runDS(contextOf(cmd), cmd.OutOrStdout(), options, output)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "maxDepth", defaults.DS.MaxDepth, "Maximum traversal depth (0=unlimited)")
	cmd.Flags().IntVar(&topCount, "topCount", defaults.DS.TopCount, "Number of top directories to display")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "0B", "Hide directories smaller than this (e.g., 10MB)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or plain")
	cmd.Flags().SortFlags = false

	return cmd
}

// dsDepth maps the ds depth flag, where 0 means unlimited.
func dsDepth(depth int) walk.DepthLimit {
	if depth == 0 {
		return walk.Unlimited()
	}

	return walk.Bounded(depth)
}

func (a *app) runDS(ctx context.Context, w io.Writer, options dirstat.Options, output string) error {
	a.log.printf("[debug]: ds path=%s depth=%s top=%d min-size=%s\n",
		options.Path, options.Depth, options.TopN, humanize.IBytes(uint64(options.MinSize))) //nolint:gosec // MinSize is never negative

	stats, err := dirstat.Run(ctx, options, a.warn)
	if err != nil {
		return err
	}

	a.log.printf("[debug]: discovered %d directories, %d skipped entries\n", stats.DirCount, stats.Warnings)

	switch output {
	case "json":
		return PrintJSON(stats, w)
	case "plain":
		return PrintPlain(stats, w)
	default:
		return PrintTable(stats, w, stylesFor(w))
	}
}
