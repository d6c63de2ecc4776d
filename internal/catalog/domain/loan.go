package domain

// LoanPeriodDays is the number of calendar days between borrowedOn and dueOn.
const LoanPeriodDays = 14

// MaxActiveLoans is the number of unreturned loans a user may hold at once.
const MaxActiveLoans = 3

// Loan records one borrow of a book by a user. ReturnedOn is nil while the loan is active
// and is set exactly once, on return.
type Loan struct {
	ID         int   `json:"id" yaml:"id"`
	UserID     int   `json:"userId" yaml:"userId"`
	BookID     int   `json:"bookId" yaml:"bookId"`
	BorrowedOn Date  `json:"borrowedOn" yaml:"borrowedOn"`
	DueOn      Date  `json:"dueOn" yaml:"dueOn"`
	ReturnedOn *Date `json:"returnedOn" yaml:"returnedOn"`
}

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusOverdue  LoanStatus = "overdue"
	LoanStatusReturned LoanStatus = "returned"
)

// Active reports whether the loan has not been returned.
func (l *Loan) Active() bool {
	return l.ReturnedOn == nil
}

// Status derives the display status of the loan as of today.
func (l *Loan) Status(today Date) LoanStatus {
	switch {
	case !l.Active():
		return LoanStatusReturned
	case l.DueOn.Before(today):
		return LoanStatusOverdue
	default:
		return LoanStatusActive
	}
}
