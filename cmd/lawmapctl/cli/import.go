package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lawmap/application/commands"
	"lawmap/domain/userdata"
)

func importCmd() *cobra.Command {
	var strategy string

	command := &cobra.Command{
		Use:     "import <file>",
		Short:   "import a backup into the document store",
		Example: "lawmapctl import backup.json --strategy merge",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			container, err := newContainer()
			if err != nil {
				return err
			}
			defer container.Shutdown()

			importCmd := commands.ImportDataCommand{
				Payload:  payload,
				Strategy: userdata.ImportStrategy(strategy),
			}
			if err := container.CommandBus.Send(context.Background(), importCmd); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %s with strategy %s\n", args[0], strategy)
			return nil
		},
	}

	command.Flags().StringVarP(&strategy, "strategy", "s", "merge", "import strategy: replace, merge or append")
	return command
}
