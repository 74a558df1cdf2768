package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage category rules",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List category rules in match order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}

				cats, err := e.rules.List()
				if err != nil {
					return err
				}
				if len(cats) == 0 {
					fmt.Println("No categories defined; everything falls back to", e.cfg.DefaultCategory)
					return nil
				}
				for _, c := range cats {
					fmt.Printf("%-20s %s\n", c.Name, strings.Join(c.Keywords, ", "))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				return e.rules.Add(args[0])
			},
		},
		&cobra.Command{
			Use:   "rename <old> <new>",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				return e.rules.Rename(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				return e.rules.Delete(args[0])
			},
		},
		&cobra.Command{
			Use:   "add-keyword <name> <keyword>",
			Short: "Add a match keyword to a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				return e.rules.AddKeyword(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "remove-keyword <name> <keyword>",
			Short: "Remove a match keyword from a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := newEnv(cmd)
				if err != nil {
					return err
				}
				return e.rules.RemoveKeyword(args[0], args[1])
			},
		},
	)

	return cmd
}
