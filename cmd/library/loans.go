package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) loanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Borrow and return books",
	}

	borrow := &cobra.Command{
		Use:   "borrow <user-id> <book-id>",
		Short: "Lend a book to a user for 14 days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			bookID, err := parseID("book", args[1])
			if err != nil {
				return err
			}
			return show(c, cmd, c.app.Handler.BorrowBook(cmd.Context(), userID, bookID), loanRow)
		},
	}

	ret := &cobra.Command{
		Use:   "return <book-id>",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseID("book", args[0])
			if err != nil {
				return err
			}
			return show(c, cmd, c.app.Handler.ReturnBook(cmd.Context(), bookID), loanRow)
		},
	}

	var userID int
	list := &cobra.Command{
		Use:   "list",
		Short: "List loans with their status",
		Long:  "Lists every loan, or only the active loans of one user with --user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("user") {
				return show(c, cmd, c.app.Handler.ActiveLoans(cmd.Context(), userID), loanViewRows)
			}
			return show(c, cmd, c.app.Handler.ListLoans(cmd.Context()), loanViewRows)
		},
	}
	list.Flags().IntVar(&userID, "user", 0, "only active loans of this user id")

	cmd.AddCommand(borrow, ret, list)
	return cmd
}
