package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paykit-dev/paykit/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "paykit",
		Short:   "Typed field extraction for payment API responses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAccountTypeCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newFlattenCommand())
	rootCmd.AddCommand(newSchemaCommand())

	return rootCmd
}
