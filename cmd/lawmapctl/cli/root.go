package cli

import (
	"github.com/spf13/cobra"

	"lawmap/infrastructure/config"
	"lawmap/infrastructure/di"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lawmapctl",
	Short: "manage the lawmap document store from the command line",
	Example: `lawmapctl export
lawmapctl export -o backup.json
lawmapctl import backup.json --strategy merge
lawmapctl stats`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(statsCmd())

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

// newContainer wires the same dependency graph the server uses, pointed at
// the store file from the environment.
func newContainer() (*di.Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return di.InitializeContainer(cfg)
}
