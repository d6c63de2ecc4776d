package domain

import "strconv"

// Book is a catalog entry. Available is false while an active loan references it.
type Book struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	ISBN      string `json:"isbn" yaml:"isbn"`
	Year      int    `json:"year" yaml:"year"`
	Genre     string `json:"genre" yaml:"genre"`
	Available bool   `json:"available" yaml:"available"`
}

// YearString returns the publication year in decimal, as matched by search.
func (b *Book) YearString() string {
	return strconv.Itoa(b.Year)
}

// BookLabel is the suggestion label for a book: "Title - Author".
func BookLabel(b Book) string {
	return b.Title + " - " + b.Author
}
