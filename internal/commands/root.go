// Package commands holds the CLI surface. Commands are thin callers
// into the pipeline: they parse flags, invoke one operation and render
// its result.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "financas",
		Short:   "Personal finance statement pipeline",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "financas.yaml", "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(),
		newReportCommand(),
		newSummaryCommand(),
		newMonthsCommand(),
		newCategoriesCommand(),
		newResetCommand(),
	)

	return rootCmd
}
