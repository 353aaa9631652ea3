package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lawmap/application/queries"
)

func exportCmd() *cobra.Command {
	var outPath string

	command := &cobra.Command{
		Use:     "export",
		Short:   "write a backup of the document store",
		Example: "lawmapctl export -o backup.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer()
			if err != nil {
				return err
			}
			defer container.Shutdown()

			result, err := container.QueryBus.Ask(context.Background(), queries.ExportDataQuery{})
			if err != nil {
				return err
			}
			export, ok := result.(*queries.ExportDataResult)
			if !ok {
				return fmt.Errorf("unexpected export result type %T", result)
			}

			path := outPath
			if path == "" {
				path = export.Filename
			}
			if err := os.WriteFile(path, export.Payload, 0o644); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(export.Payload))
			return nil
		},
	}

	command.Flags().StringVarP(&outPath, "output", "o", "", "output file (default lawmap_backup_<date>.json)")
	return command
}
