package handler

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/platform/result"
)

// AddBook adds a book and reports "Book added." or the rejection.
func (h *Handler) AddBook(ctx context.Context, title, author, isbn string, year int, genre string) result.Result[*domain.Book] {
	var book *domain.Book
	err := h.observe(ctx, "book.add", func(ctx context.Context) (err error) {
		book, err = h.catalog.AddBook(ctx, title, author, isbn, year, genre)
		return err
	}, attribute.String("library.isbn", isbn))
	if err != nil {
		return result.Failure[*domain.Book](err)
	}
	return result.Success(book, "Book added.")
}

// RemoveBook removes a book. Removing an unknown id succeeds with Value false.
func (h *Handler) RemoveBook(ctx context.Context, id int) result.Result[bool] {
	var removed bool
	err := h.observe(ctx, "book.remove", func(ctx context.Context) (err error) {
		removed, err = h.catalog.RemoveBook(ctx, id)
		return err
	}, attribute.Int("library.book_id", id))
	if err != nil {
		return result.Failure[bool](err)
	}
	if !removed {
		return result.Success(false, fmt.Sprintf("No book with ID %d; nothing removed.", id))
	}
	return result.Success(true, "Book removed.")
}

// SearchBooks matches keyword against title, author, genre and year.
func (h *Handler) SearchBooks(ctx context.Context, keyword string) result.Result[[]domain.Book] {
	var books []domain.Book
	_ = h.observe(ctx, "book.search", func(context.Context) error {
		books = h.catalog.SearchBooks(keyword)
		return nil
	})
	return searchResult(books, "book", "books")
}

// ListBooks returns the whole catalog of books.
func (h *Handler) ListBooks(ctx context.Context) result.Result[[]domain.Book] {
	var books []domain.Book
	_ = h.observe(ctx, "book.list", func(context.Context) error {
		books = h.catalog.ListBooks()
		return nil
	})
	return result.Success(books, fmt.Sprintf("%d books in catalog.", len(books)))
}
