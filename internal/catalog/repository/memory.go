package repository

import (
	"context"
	"sync"

	"library-management/backend/internal/catalog/domain"
)

// MemoryRepository keeps the encoded document in memory. Used by tests and STORE_DRIVER=memory.
type MemoryRepository struct {
	mu    sync.Mutex
	doc   []byte
	saves int
}

// NewMemoryRepository returns an empty in-memory slot.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load decodes the held document, or returns nil if nothing was saved yet.
func (r *MemoryRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil, nil
	}
	return decode(r.doc)
}

// Save encodes c and replaces the held document.
func (r *MemoryRepository) Save(ctx context.Context, c *domain.Catalog) error {
	b, err := encode(c)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = b
	r.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// Document returns a copy of the raw stored JSON.
func (r *MemoryRepository) Document() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.doc...)
}
