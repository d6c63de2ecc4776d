package main

import (
	"context"
	"testing"

	"library-management/backend/internal/app"
	"library-management/backend/internal/config"
)

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	a, err := app.Open(ctx, &config.Config{StoreDriver: config.StoreDriverMemory, LogLevel: "error"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close(ctx)

	applied, err := seed(ctx, a)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !applied {
		t.Fatal("first seed should apply")
	}

	c := a.Store.Snapshot()
	if len(c.Books) != len(sampleBooks) || len(c.Users) != len(sampleUsers) || len(c.Loans) != len(sampleLoans) {
		t.Fatalf("seeded %d/%d/%d", len(c.Books), len(c.Users), len(c.Loans))
	}
	for _, b := range c.Books {
		if b.Available != (c.ActiveLoanForBook(b.ID) == nil) {
			t.Errorf("book %d availability out of sync", b.ID)
		}
	}

	applied, err = seed(ctx, a)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if applied {
		t.Error("second seed should skip")
	}
	if got := a.Store.Snapshot(); len(got.Books) != len(sampleBooks) {
		t.Errorf("books = %d after second seed", len(got.Books))
	}
}
