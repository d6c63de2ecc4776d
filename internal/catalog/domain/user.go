package domain

// User is a library member who can borrow books.
type User struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"` // exactly 10 digits
}

// UserLabel is the suggestion label for a user: "Name (email)".
func UserLabel(u User) string {
	return u.Name + " (" + u.Email + ")"
}
