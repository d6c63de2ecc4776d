package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Autocomplete users or available books (2 characters minimum)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "users <query>",
			Short: `Suggest users by "Name (email)"`,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r := c.app.Handler.SuggestUsers(cmd.Context(), strings.Join(args, " "))
				return show(c, cmd, r, suggestionRows)
			},
		},
		&cobra.Command{
			Use:   "books <query>",
			Short: `Suggest available books by "Title - Author"`,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r := c.app.Handler.SuggestBooks(cmd.Context(), strings.Join(args, " "))
				return show(c, cmd, r, suggestionRows)
			},
		},
	)
	return cmd
}
