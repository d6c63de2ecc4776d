// library is the command-line front end to the library catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"library-management/backend/internal/app"
	"library-management/backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return app.Open(ctx, cfg)
	})
	if err := c.execute(ctx, os.Args[1:], os.Stdout); err != nil {
		// Rejections were already rendered with their message.
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "library:", err)
		}
		os.Exit(1)
	}
}
