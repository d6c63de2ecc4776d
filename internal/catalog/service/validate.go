package service

import (
	"regexp"

	"library-management/backend/internal/catalog/domain"
)

// Rejections returned by the catalog service. Each unwraps to a domain error kind.
var (
	ErrMissingFields  = domain.NewError(domain.ErrValidation, "All fields are required.")
	ErrInvalidISBN    = domain.NewError(domain.ErrValidation, "Invalid ISBN (only ISBN-10 or ISBN-13 are accepted).")
	ErrInvalidYear    = domain.NewError(domain.ErrValidation, "Invalid publication year.")
	ErrDuplicateISBN  = domain.NewError(domain.ErrConflict, "A book with this ISBN already exists.")
	ErrInvalidEmail   = domain.NewError(domain.ErrValidation, "Invalid email.")
	ErrInvalidPhone   = domain.NewError(domain.ErrValidation, "Invalid phone number (10 digits expected).")
	ErrDuplicateEmail = domain.NewError(domain.ErrConflict, "A user with this email already exists.")
)

// MinYear is the earliest accepted publication year.
const MinYear = 1000

const (
	ISBN10 = "ISBN-10"
	ISBN13 = "ISBN-13"
)

var (
	isbn10Pattern = regexp.MustCompile(`^\d-\d{4}-\d{4}-[\dX]$`)
	isbn13Pattern = regexp.MustCompile(`^978-\d-\d{4}-\d{4}-\d$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
)

// ISBNFormat reports which hyphenated ISBN form isbn uses. Check digits are not verified.
func ISBNFormat(isbn string) (string, bool) {
	switch {
	case isbn10Pattern.MatchString(isbn):
		return ISBN10, true
	case isbn13Pattern.MatchString(isbn):
		return ISBN13, true
	}
	return "", false
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone is exactly 10 ASCII digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
