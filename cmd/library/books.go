package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) bookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Add, remove, search and list books",
	}

	var title, author, isbn, genre string
	var year int
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Adds a book to the catalog. The ISBN must be hyphenated, either
ISBN-10 (0-1234-5678-9, last character may be X) or ISBN-13 (978-0-1234-5678-9).

Example:
  library book add --title Dune --author "Frank Herbert" --isbn 978-0-4411-7271-9 --year 1965 --genre "Science Fiction"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.app.Handler.AddBook(cmd.Context(), title, author, isbn, year, genre)
			return show(c, cmd, r, bookRow)
		},
	}
	add.Flags().StringVar(&title, "title", "", "book title")
	add.Flags().StringVar(&author, "author", "", "author name")
	add.Flags().StringVar(&isbn, "isbn", "", "hyphenated ISBN-10 or ISBN-13")
	add.Flags().IntVar(&year, "year", 0, "publication year")
	add.Flags().StringVar(&genre, "genre", "", "genre")

	remove := &cobra.Command{
		Use:   "remove <book-id>",
		Short: "Remove a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("book", args[0])
			if err != nil {
				return err
			}
			return show[bool](c, cmd, c.app.Handler.RemoveBook(cmd.Context(), id), nil)
		},
	}

	search := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search books by title, author, genre or year",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.app.Handler.SearchBooks(cmd.Context(), strings.Join(args, " "))
			return show(c, cmd, r, bookRows)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(c, cmd, c.app.Handler.ListBooks(cmd.Context()), bookRows)
		},
	}

	cmd.AddCommand(add, remove, search, list)
	return cmd
}
