package cli

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/gochart/exportgen/internal/pkg/codemod"
)

const checkShortDescription = `Check that the export list is up to date`

const checkLongDescription = `Command "check"

Compute the export list the same way as the "update" command,
but only compare it with the entry file content.

Nothing is written, a stale export list fails the command, for CI.
`

func checkCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: checkShortDescription,
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger

			lib, names, err := root.relevantNames()
			if err != nil {
				return err
			}
			path := root.entryPath(lib)

			current, updated, err := codemod.Candidate(root.fs, path, names)
			if err != nil {
				return err
			}

			if current == updated {
				logger.Infof(`Export list in "%s" is up to date.`, path)
				return nil
			}

			logger.Info(cmp.Diff(current, updated))
			return fmt.Errorf(`export list in "%s" is not up to date, run the "update" command`, path)
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringP("package", "p", ".", "pattern of the library root package")
	cmd.Flags().StringP("typing-package", "t", "./internal/typing", "pattern of the typing-support package")
	cmd.Flags().StringP("entry-file", "e", "", "entry file, discovered by the declaration when empty")
	return cmd
}
