package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Add, remove, search and list users",
	}

	var name, email, phone string
	add := &cobra.Command{
		Use:     "add",
		Short:   "Register a user",
		Example: `  library user add --name "Ada Lovelace" --email ada@example.org --phone 0123456789`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.app.Handler.AddUser(cmd.Context(), name, email, phone)
			return show(c, cmd, r, userRow)
		},
	}
	add.Flags().StringVar(&name, "name", "", "full name")
	add.Flags().StringVar(&email, "email", "", "email address, unique across users")
	add.Flags().StringVar(&phone, "phone", "", "phone number, 10 digits")

	remove := &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Remove a user; their loans are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}
			return show[bool](c, cmd, c.app.Handler.RemoveUser(cmd.Context(), id), nil)
		},
	}

	search := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search users by name, email or phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.app.Handler.SearchUsers(cmd.Context(), strings.Join(args, " "))
			return show(c, cmd, r, userRows)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(c, cmd, c.app.Handler.ListUsers(cmd.Context()), userRows)
		},
	}

	cmd.AddCommand(add, remove, search, list)
	return cmd
}
