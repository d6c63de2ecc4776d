package handler

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"library-management/backend/internal/catalog/domain"
	loanservice "library-management/backend/internal/loan/service"
	"library-management/backend/internal/platform/result"
)

// BorrowBook lends a book and reports "Loan recorded." or the first failed check.
func (h *Handler) BorrowBook(ctx context.Context, userID, bookID int) result.Result[*domain.Loan] {
	var loan *domain.Loan
	err := h.observe(ctx, "loan.borrow", func(ctx context.Context) (err error) {
		loan, err = h.loans.BorrowBook(ctx, userID, bookID)
		return err
	}, attribute.Int("library.user_id", userID), attribute.Int("library.book_id", bookID))
	if err != nil {
		return result.Failure[*domain.Loan](err)
	}
	return result.Success(loan, "Loan recorded.")
}

// ReturnBook closes the active loan of a book and reports "Book returned.".
func (h *Handler) ReturnBook(ctx context.Context, bookID int) result.Result[*domain.Loan] {
	var loan *domain.Loan
	err := h.observe(ctx, "loan.return", func(ctx context.Context) (err error) {
		loan, err = h.loans.ReturnBook(ctx, bookID)
		return err
	}, attribute.Int("library.book_id", bookID))
	if err != nil {
		return result.Failure[*domain.Loan](err)
	}
	return result.Success(loan, "Book returned.")
}

// ListLoans returns every loan with its user name, book title and status.
func (h *Handler) ListLoans(ctx context.Context) result.Result[[]loanservice.LoanView] {
	var loans []loanservice.LoanView
	_ = h.observe(ctx, "loan.list", func(context.Context) error {
		loans = h.loans.ListLoans()
		return nil
	})
	return result.Success(loans, fmt.Sprintf("%d loans on record.", len(loans)))
}

// ActiveLoans returns the unreturned loans of a user.
func (h *Handler) ActiveLoans(ctx context.Context, userID int) result.Result[[]loanservice.LoanView] {
	var loans []loanservice.LoanView
	_ = h.observe(ctx, "loan.active", func(context.Context) error {
		loans = h.loans.ActiveLoans(userID)
		return nil
	}, attribute.Int("library.user_id", userID))
	return result.Success(loans, fmt.Sprintf("%d active loans.", len(loans)))
}
