// Package service implements borrowing and returning books against the shared catalog store.
package service

import (
	"context"
	"encoding/json"
	"time"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/catalog/store"
	"library-management/backend/internal/telemetry"
)

// Placeholders shown in loan listings when a referenced user or book has been removed.
const (
	UnknownUser = "Unknown user"
	UnknownBook = "Unknown book"
)

var (
	ErrUserNotFound    = domain.NewError(domain.ErrNotFound, "User not found.")
	ErrBookNotFound    = domain.NewError(domain.ErrNotFound, "Book not found.")
	ErrBookUnavailable = domain.NewError(domain.ErrConflict, "Book already borrowed.")
	ErrLoanLimit       = domain.NewError(domain.ErrLimitExceeded, "Limit of 3 loans reached for this user.")
	ErrNoActiveLoan    = domain.NewError(domain.ErrNotFound, "No active loan found for this book.")
)

// LoanView is a loan joined with the names it refers to, for display.
type LoanView struct {
	domain.Loan `yaml:",inline"`
	UserName    string            `json:"userName" yaml:"userName"`
	BookTitle   string            `json:"bookTitle" yaml:"bookTitle"`
	Status      domain.LoanStatus `json:"status" yaml:"status"`
}

// LoanService records borrows and returns. Dates come from the injected clock in its location.
type LoanService struct {
	store     *store.Store
	nowF      func() time.Time
	telemetry *telemetry.Recorder
}

// NewLoanService returns a LoanService over st. now may be nil (time.Now); rec may be nil.
func NewLoanService(st *store.Store, now func() time.Time, rec *telemetry.Recorder) *LoanService {
	if now == nil {
		now = time.Now
	}
	return &LoanService{store: st, nowF: now, telemetry: rec}
}

func (s *LoanService) today() domain.Date {
	return domain.DateOf(s.nowF())
}

// BorrowBook lends bookID to userID for domain.LoanPeriodDays days. Checks run in order:
// user exists, book exists, book available, user under domain.MaxActiveLoans.
func (s *LoanService) BorrowBook(ctx context.Context, userID, bookID int) (*domain.Loan, error) {
	today := s.today()
	var loan domain.Loan
	err := s.store.Update(ctx, func(c *domain.Catalog) error {
		if c.User(userID) == nil {
			return ErrUserNotFound
		}
		book := c.Book(bookID)
		if book == nil {
			return ErrBookNotFound
		}
		if !book.Available {
			return ErrBookUnavailable
		}
		if c.ActiveLoanCount(userID) >= domain.MaxActiveLoans {
			return ErrLoanLimit
		}
		loan = domain.Loan{
			ID:         c.NextLoanID,
			UserID:     userID,
			BookID:     bookID,
			BorrowedOn: today,
			DueOn:      today.AddDays(domain.LoanPeriodDays),
		}
		c.NextLoanID++
		c.Loans = append(c.Loans, loan)
		book.Available = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, telemetry.EventLoanBorrowed, &loan)
	return &loan, nil
}

// ReturnBook closes the first active loan for bookID and marks the book available again.
// The loan is closed even if the book itself has since been removed.
func (s *LoanService) ReturnBook(ctx context.Context, bookID int) (*domain.Loan, error) {
	today := s.today()
	var loan domain.Loan
	err := s.store.Update(ctx, func(c *domain.Catalog) error {
		active := c.ActiveLoanForBook(bookID)
		if active == nil {
			return ErrNoActiveLoan
		}
		returned := today
		active.ReturnedOn = &returned
		if book := c.Book(bookID); book != nil {
			book.Available = true
		}
		loan = *active
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, telemetry.EventLoanReturned, &loan)
	return &loan, nil
}

// ListLoans returns every loan, active and returned, in creation order.
func (s *LoanService) ListLoans() []LoanView {
	today := s.today()
	out := []LoanView{}
	s.store.View(func(c *domain.Catalog) {
		for _, l := range c.Loans {
			out = append(out, view(c, l, today))
		}
	})
	return out
}

// ActiveLoans returns the unreturned loans of userID.
func (s *LoanService) ActiveLoans(userID int) []LoanView {
	today := s.today()
	out := []LoanView{}
	s.store.View(func(c *domain.Catalog) {
		for _, l := range c.Loans {
			if l.UserID == userID && l.Active() {
				out = append(out, view(c, l, today))
			}
		}
	})
	return out
}

func view(c *domain.Catalog, l domain.Loan, today domain.Date) LoanView {
	v := LoanView{Loan: l, UserName: UnknownUser, BookTitle: UnknownBook, Status: l.Status(today)}
	if l.ReturnedOn != nil {
		r := *l.ReturnedOn
		v.ReturnedOn = &r
	}
	if u := c.User(l.UserID); u != nil {
		v.UserName = u.Name
	}
	if b := c.Book(l.BookID); b != nil {
		v.BookTitle = b.Title
	}
	return v
}

func (s *LoanService) emit(ctx context.Context, t telemetry.EventType, l *domain.Loan) {
	e := telemetry.NewEvent(t)
	e.BookID, e.UserID, e.LoanID = l.BookID, l.UserID, l.ID
	e.Metadata, _ = json.Marshal(map[string]string{"dueOn": l.DueOn.String()})
	s.telemetry.Event(ctx, e)
}
