package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paykit-dev/paykit/internal/model"
)

func newAccountTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account-type <code>...",
		Short: "Parse account type codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, code := range args {
				fmt.Fprintf(out, "%s\t%s\n", code, model.ParseAccountType(code).Code())
			}
			return nil
		},
	}
}
