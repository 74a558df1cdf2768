package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newMonthsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "months",
		Short: "Manage stored month buckets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored months",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}

				months, err := e.store.Months()
				if err != nil {
					return err
				}
				if len(months) == 0 {
					fmt.Println("No months stored.")
					return nil
				}

				keys := make([]string, 0, len(months))
				for key := range months {
					keys = append(keys, key)
				}
				sort.Strings(keys)

				for _, key := range keys {
					fmt.Printf("%s  %d transactions\n", key, len(months[key]))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <yyyy-mm>",
			Short: "Delete a month and release its deduplication entries",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				if err := e.pipeline.DeleteMonth(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted %s; its files can be imported again.\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
