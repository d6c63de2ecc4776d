package service

import (
	"strings"

	"library-management/backend/internal/catalog/domain"
)

// MinSuggestQuery is the shortest query that produces suggestions.
const MinSuggestQuery = 2

func suggest[T any](items []T, label func(T) string, query string) []T {
	q := strings.ToLower(query)
	out := []T{}
	if len([]rune(q)) < MinSuggestQuery {
		return out
	}
	for _, it := range items {
		if strings.Contains(strings.ToLower(label(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// SuggestUsers returns users whose "Name (email)" label contains query.
func (s *CatalogService) SuggestUsers(query string) []domain.User {
	return suggest(s.ListUsers(), domain.UserLabel, query)
}

// SuggestBooks returns available books whose "Title - Author" label contains query.
func (s *CatalogService) SuggestBooks(query string) []domain.Book {
	var available []domain.Book
	for _, b := range s.ListBooks() {
		if b.Available {
			available = append(available, b)
		}
	}
	return suggest(available, domain.BookLabel, query)
}
