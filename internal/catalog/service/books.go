package service

import (
	"context"
	"strings"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/telemetry"
)

// AddBook validates the fields, assigns the next book ID, and saves the catalog.
// Fields are trimmed; a zero year counts as missing.
func (s *CatalogService) AddBook(ctx context.Context, title, author, isbn string, year int, genre string) (*domain.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = strings.TrimSpace(isbn)
	genre = strings.TrimSpace(genre)
	if title == "" || author == "" || isbn == "" || year == 0 || genre == "" {
		return nil, ErrMissingFields
	}
	format, ok := ISBNFormat(isbn)
	if !ok {
		return nil, ErrInvalidISBN
	}
	if year < MinYear || year > s.now().Year() {
		return nil, ErrInvalidYear
	}

	var book domain.Book
	err := s.store.Update(ctx, func(c *domain.Catalog) error {
		for i := range c.Books {
			if c.Books[i].ISBN == isbn {
				return ErrDuplicateISBN
			}
		}
		book = domain.Book{
			ID:        c.NextBookID,
			Title:     title,
			Author:    author,
			ISBN:      isbn,
			Year:      year,
			Genre:     genre,
			Available: true,
		}
		c.NextBookID++
		c.Books = append(c.Books, book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, telemetry.EventBookAdded, book.ID, 0, map[string]any{"isbn": book.ISBN, "format": format})
	return &book, nil
}

// RemoveBook deletes the book with id. Removing an unknown id is not an error; removed reports
// whether a book was deleted. Loans that reference the book are kept as they are.
func (s *CatalogService) RemoveBook(ctx context.Context, id int) (removed bool, err error) {
	err = s.store.Update(ctx, func(c *domain.Catalog) error {
		kept := c.Books[:0]
		for _, b := range c.Books {
			if b.ID == id {
				removed = true
				continue
			}
			kept = append(kept, b)
		}
		c.Books = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.emit(ctx, telemetry.EventBookRemoved, id, 0, nil)
	}
	return removed, nil
}

// SearchBooks returns books whose title, author, genre or year contains keyword, ignoring case.
// An empty keyword matches every book.
func (s *CatalogService) SearchBooks(keyword string) []domain.Book {
	needle := strings.ToLower(keyword)
	out := []domain.Book{}
	s.store.View(func(c *domain.Catalog) {
		for _, b := range c.Books {
			if strings.Contains(strings.ToLower(b.Title), needle) ||
				strings.Contains(strings.ToLower(b.Author), needle) ||
				strings.Contains(strings.ToLower(b.Genre), needle) ||
				strings.Contains(b.YearString(), needle) {
				out = append(out, b)
			}
		}
	})
	return out
}

// ListBooks returns every book in creation order.
func (s *CatalogService) ListBooks() []domain.Book {
	var out []domain.Book
	s.store.View(func(c *domain.Catalog) {
		out = append([]domain.Book{}, c.Books...)
	})
	return out
}

// GetBook returns the book with id, or nil.
func (s *CatalogService) GetBook(id int) *domain.Book {
	var out *domain.Book
	s.store.View(func(c *domain.Catalog) {
		if b := c.Book(id); b != nil {
			cp := *b
			out = &cp
		}
	})
	return out
}
