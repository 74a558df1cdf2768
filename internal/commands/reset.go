package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all stored transactions, rules and the deduplication ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the store without --yes")
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			if err := e.pipeline.Reset(); err != nil {
				return err
			}
			fmt.Println("Store cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the store")

	return cmd
}
