package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/devkit/internal/dispatch"
	"github.com/idelchi/devkit/internal/pack"
)

func (a *app) packCommand() *cobra.Command {
	var directory string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Build and pack a package, then copy the archive path to the clipboard",
		Long: heredoc.Doc(`
			Deletes existing archives (*.tgz) in --directory, runs the build step
			(npm run build) and the pack step (npm pack), then copies the absolute path
			of the newest archive to the clipboard. If the clipboard is unavailable the
			path is printed instead.

			The commands can be changed with the pack section of the config file or
			with DEVKIT_BUILD_CMD and DEVKIT_PACK_CMD.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			packer := pack.Packer{
				Runner:    dispatch.ShellRunner{},
				Clipboard: a.clipboard,
				Logger:    a.warn,
				Options: pack.Options{
					BuildCommand: a.cfg.Pack.Build,
					PackCommand:  a.cfg.Pack.Pack,
					Pattern:      a.cfg.Pack.Pattern,
				},
			}

			a.log.printf("[debug]: pack dir=%s build=%q pack=%q pattern=%s\n",
				directory, a.cfg.Pack.Build, a.cfg.Pack.Pack, a.cfg.Pack.Pattern)

			res, err := packer.Run(contextOf(cmd), directory)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printPack(w, stylesFor(w), res)

			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", ".", "Package directory")

	return cmd
}
