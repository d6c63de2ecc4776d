// seed fills an empty catalog with sample books, users and loans for local testing.
// Idempotent: skips everything if the catalog already holds books or users.
package main

import (
	"context"
	"log"

	"library-management/backend/internal/app"
	"library-management/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	defer a.Close(ctx)

	applied, err := seed(ctx, a)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if !applied {
		log.Println("Seed already applied (catalog is not empty). Skipping.")
		return
	}
	log.Printf("Seeded %d books, %d users and %d loans.", len(sampleBooks), len(sampleUsers), len(sampleLoans))
}
