package cli

import (
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/gochart/exportgen/internal/pkg/codemod"
)

const updateShortDescription = `Update the export list of the library`

const updateLongDescription = `Command "update"

Introspect the library in the working directory,
compute the relevant exported names
and rewrite the export list declaration in the entry file.

The file is reformatted in the canonical style on write.
`

func updateCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: updateShortDescription,
		Long:  updateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger

			lib, names, err := root.relevantNames()
			if err != nil {
				return err
			}
			path := root.entryPath(lib)

			// Dry run, compute and show the difference, write nothing
			if root.options.DryRun() {
				current, updated, err := codemod.Candidate(root.fs, path, names)
				if err != nil {
					return err
				}
				if current == updated {
					logger.Infof(`Export list in "%s" is up to date.`, path)
				} else {
					logger.Infof(`Dry run, "%s" would be updated:`, path)
					logger.Info(cmp.Diff(current, updated))
				}
				return nil
			}

			if err := codemod.Update(logger, root.fs, path, names); err != nil {
				return err
			}

			logger.Infof(`Export list in "%s" updated, %d names.`, path, len(names))
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringP("package", "p", ".", "pattern of the library root package")
	cmd.Flags().StringP("typing-package", "t", "./internal/typing", "pattern of the typing-support package")
	cmd.Flags().StringP("entry-file", "e", "", "entry file, discovered by the declaration when empty")
	cmd.Flags().Bool("dry-run", false, "print the difference, do not write")
	return cmd
}
