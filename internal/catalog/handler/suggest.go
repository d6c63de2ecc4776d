package handler

import (
	"context"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/platform/result"
)

// Suggestion is one autocomplete entry.
type Suggestion struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

func (h *Handler) SuggestUsers(ctx context.Context, query string) result.Result[[]Suggestion] {
	out := []Suggestion{}
	_ = h.observe(ctx, "suggest.users", func(context.Context) error {
		for _, u := range h.catalog.SuggestUsers(query) {
			out = append(out, Suggestion{ID: u.ID, Label: domain.UserLabel(u)})
		}
		return nil
	})
	return searchResult(out, "user", "users")
}

// SuggestBooks only offers books that can be borrowed right now.
func (h *Handler) SuggestBooks(ctx context.Context, query string) result.Result[[]Suggestion] {
	out := []Suggestion{}
	_ = h.observe(ctx, "suggest.books", func(context.Context) error {
		for _, b := range h.catalog.SuggestBooks(query) {
			out = append(out, Suggestion{ID: b.ID, Label: domain.BookLabel(b)})
		}
		return nil
	})
	return searchResult(out, "book", "books")
}
