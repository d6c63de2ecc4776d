package domain

// Catalog is the aggregate root persisted as one JSON document.
type Catalog struct {
	Books      []Book `json:"books" yaml:"books"`
	Users      []User `json:"users" yaml:"users"`
	Loans      []Loan `json:"loans" yaml:"loans"`
	NextBookID int    `json:"nextBookId" yaml:"nextBookId"`
	NextUserID int    `json:"nextUserId" yaml:"nextUserId"`
	NextLoanID int    `json:"nextLoanId" yaml:"nextLoanId"`
}

// NewCatalog returns an empty catalog with all counters at 1.
func NewCatalog() *Catalog {
	return &Catalog{
		Books:      []Book{},
		Users:      []User{},
		Loans:      []Loan{},
		NextBookID: 1,
		NextUserID: 1,
		NextLoanID: 1,
	}
}

// Normalize fills nil lists and repairs counters that would reuse an existing ID.
// Documents written by older front ends may omit either.
func (c *Catalog) Normalize() {
	if c.Books == nil {
		c.Books = []Book{}
	}
	if c.Users == nil {
		c.Users = []User{}
	}
	if c.Loans == nil {
		c.Loans = []Loan{}
	}
	for _, b := range c.Books {
		if b.ID >= c.NextBookID {
			c.NextBookID = b.ID + 1
		}
	}
	for _, u := range c.Users {
		if u.ID >= c.NextUserID {
			c.NextUserID = u.ID + 1
		}
	}
	for _, l := range c.Loans {
		if l.ID >= c.NextLoanID {
			c.NextLoanID = l.ID + 1
		}
	}
	if c.NextBookID < 1 {
		c.NextBookID = 1
	}
	if c.NextUserID < 1 {
		c.NextUserID = 1
	}
	if c.NextLoanID < 1 {
		c.NextLoanID = 1
	}
}

// Clone returns a deep copy of c.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		Books:      append([]Book{}, c.Books...),
		Users:      append([]User{}, c.Users...),
		Loans:      make([]Loan, len(c.Loans)),
		NextBookID: c.NextBookID,
		NextUserID: c.NextUserID,
		NextLoanID: c.NextLoanID,
	}
	for i, l := range c.Loans {
		if l.ReturnedOn != nil {
			d := *l.ReturnedOn
			l.ReturnedOn = &d
		}
		out.Loans[i] = l
	}
	return out
}

// Book returns a pointer into Books for id, or nil.
func (c *Catalog) Book(id int) *Book {
	for i := range c.Books {
		if c.Books[i].ID == id {
			return &c.Books[i]
		}
	}
	return nil
}

// User returns a pointer into Users for id, or nil.
func (c *Catalog) User(id int) *User {
	for i := range c.Users {
		if c.Users[i].ID == id {
			return &c.Users[i]
		}
	}
	return nil
}

// ActiveLoanCount returns how many unreturned loans userID holds.
func (c *Catalog) ActiveLoanCount(userID int) int {
	n := 0
	for i := range c.Loans {
		if c.Loans[i].UserID == userID && c.Loans[i].Active() {
			n++
		}
	}
	return n
}

// ActiveLoanForBook returns the first active loan in list order that references bookID, or nil.
func (c *Catalog) ActiveLoanForBook(bookID int) *Loan {
	for i := range c.Loans {
		if c.Loans[i].BookID == bookID && c.Loans[i].Active() {
			return &c.Loans[i]
		}
	}
	return nil
}
