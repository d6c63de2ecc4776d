// Package repository persists the catalog as one JSON document in a named slot.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"library-management/backend/internal/catalog/domain"
)

// Repository loads and saves the whole catalog document.
type Repository interface {
	// Load returns the stored catalog, or nil if the slot is empty.
	Load(ctx context.Context) (*domain.Catalog, error)
	// Save replaces the stored document with c.
	Save(ctx context.Context, c *domain.Catalog) error
}

func encode(c *domain.Catalog) ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return b, nil
}

func decode(b []byte) (*domain.Catalog, error) {
	var c domain.Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.Normalize()
	return &c, nil
}
