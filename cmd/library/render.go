package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/catalog/handler"
	loanservice "library-management/backend/internal/loan/service"
	"library-management/backend/internal/platform/result"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	return f == formatTable || f == formatJSON || f == formatYAML
}

// tableFunc returns the header and rows for a result value; nil means message only.
type tableFunc[T any] func(v T) (headers []string, rows [][]string)

func render[T any](w io.Writer, format string, r result.Result[T], tf tableFunc[T]) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	if _, err := fmt.Fprintln(w, r.Message); err != nil {
		return err
	}
	if !r.OK || tf == nil {
		return nil
	}
	headers, rows := tf(r.Value)
	if len(rows) == 0 {
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func bookRows(books []domain.Book) ([]string, [][]string) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			strconv.Itoa(b.ID), b.Title, b.Author, b.ISBN, b.YearString(), b.Genre, yesNo(b.Available),
		})
	}
	return []string{"ID", "Title", "Author", "ISBN", "Year", "Genre", "Available"}, rows
}

func bookRow(b *domain.Book) ([]string, [][]string) {
	return bookRows([]domain.Book{*b})
}

func userRows(users []domain.User) ([]string, [][]string) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, u.Email, u.Phone})
	}
	return []string{"ID", "Name", "Email", "Phone"}, rows
}

func userRow(u *domain.User) ([]string, [][]string) {
	return userRows([]domain.User{*u})
}

func returnedOn(d *domain.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func loanRow(l *domain.Loan) ([]string, [][]string) {
	return []string{"ID", "User", "Book", "Borrowed", "Due", "Returned"}, [][]string{{
		strconv.Itoa(l.ID), strconv.Itoa(l.UserID), strconv.Itoa(l.BookID),
		l.BorrowedOn.String(), l.DueOn.String(), returnedOn(l.ReturnedOn),
	}}
}

func loanViewRows(loans []loanservice.LoanView) ([]string, [][]string) {
	rows := make([][]string, 0, len(loans))
	for _, l := range loans {
		rows = append(rows, []string{
			strconv.Itoa(l.ID), l.UserName, l.BookTitle,
			l.BorrowedOn.String(), l.DueOn.String(), returnedOn(l.ReturnedOn), string(l.Status),
		})
	}
	return []string{"ID", "User", "Book", "Borrowed", "Due", "Returned", "Status"}, rows
}

func suggestionRows(s []handler.Suggestion) ([]string, [][]string) {
	rows := make([][]string, 0, len(s))
	for _, it := range s {
		rows = append(rows, []string{strconv.Itoa(it.ID), it.Label})
	}
	return []string{"ID", "Label"}, rows
}
