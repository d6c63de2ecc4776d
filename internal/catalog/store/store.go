// Package store holds the in-memory catalog for a session and writes it back after each change.
package store

import (
	"context"
	"fmt"
	"sync"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/catalog/repository"
)

// Store is the handle services share. The catalog is loaded once by Open; every Update
// applies a mutation to a copy, saves the copy wholesale, and only then makes it current.
// A rejected mutation or a failed save leaves the current catalog untouched.
type Store struct {
	mu      sync.Mutex
	repo    repository.Repository
	catalog *domain.Catalog
}

// Open loads the catalog from repo, or starts from an empty catalog if the slot is empty.
func Open(ctx context.Context, repo repository.Repository) (*Store, error) {
	c, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if c == nil {
		c = domain.NewCatalog()
	}
	c.Normalize()
	return &Store{repo: repo, catalog: c}, nil
}

// View calls fn with the current catalog. fn must not modify it or retain it.
func (s *Store) View(fn func(c *domain.Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.catalog)
}

// Snapshot returns a deep copy of the current catalog.
func (s *Store) Snapshot() *domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Clone()
}

// Update runs fn against a copy of the catalog. If fn returns an error nothing is saved
// and the error is returned as is. Otherwise the copy is saved and becomes current.
func (s *Store) Update(ctx context.Context, fn func(c *domain.Catalog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.catalog.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	s.catalog = next
	return nil
}
