package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"library-management/backend/internal/app"
	"library-management/backend/internal/platform/result"
)

// errRejected is returned by commands whose result was not OK, so the process exits non-zero.
var errRejected = errors.New("operation rejected")

type opener func(ctx context.Context) (*app.App, error)

type cli struct {
	open   opener
	output string
	app    *app.App
}

func newCLI(open opener) *cli {
	return &cli{open: open}
}

// execute runs one command line and closes the session it opened, whatever the outcome.
func (c *cli) execute(ctx context.Context, args []string, out io.Writer) error {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	err := root.ExecuteContext(ctx)
	if c.app != nil {
		err = errors.Join(err, c.app.Close(ctx))
		c.app = nil
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Manage books, users and loans of a small library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(c.output) {
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", c.output)
			}
			a, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.output, "output", "o", formatTable, "output format: table, json or yaml")

	root.AddCommand(c.bookCmd(), c.userCmd(), c.loanCmd(), c.suggestCmd())
	return root
}

// show renders r and turns a failed result into errRejected.
func show[T any](c *cli, cmd *cobra.Command, r result.Result[T], table tableFunc[T]) error {
	if err := render(cmd.OutOrStdout(), c.output, r, table); err != nil {
		return err
	}
	if !r.OK {
		return errRejected
	}
	return nil
}

func parseID(kind, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
