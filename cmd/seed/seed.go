package main

import (
	"context"
	"fmt"

	"library-management/backend/internal/app"
	"library-management/backend/internal/catalog/domain"
)

type sampleBook struct {
	title, author, isbn string
	year                int
	genre               string
}

var sampleBooks = []sampleBook{
	{"Dune", "Frank Herbert", "978-0-4411-7271-9", 1965, "Science Fiction"},
	{"Emma", "Jane Austen", "0-1414-3958-X", 1815, "Classic"},
	{"The Hobbit", "J. R. R. Tolkien", "978-0-2611-0221-7", 1937, "Fantasy"},
	{"Foundation", "Isaac Asimov", "0-5533-8257-2", 1951, "Science Fiction"},
	{"Les Misérables", "Victor Hugo", "978-2-2530-9633-4", 1862, "Classic"},
	{"Neuromancer", "William Gibson", "0-4410-5694-5", 1984, "Cyberpunk"},
}

type sampleUser struct {
	name, email, phone string
}

var sampleUsers = []sampleUser{
	{"Ada Lovelace", "ada@example.org", "0612345678"},
	{"Alan Turing", "alan@example.org", "0698765432"},
	{"Grace Hopper", "grace@example.org", "0611223344"},
}

// sampleLoans pairs user and book positions in the sample lists.
var sampleLoans = [][2]int{{0, 0}, {0, 3}, {1, 2}}

// seed adds the sample data through the handler so every rule applies.
// It reports false without changing anything when the catalog is not empty.
func seed(ctx context.Context, a *app.App) (bool, error) {
	empty := true
	a.Store.View(func(c *domain.Catalog) {
		empty = len(c.Books) == 0 && len(c.Users) == 0
	})
	if !empty {
		return false, nil
	}

	bookIDs := make([]int, 0, len(sampleBooks))
	for _, b := range sampleBooks {
		r := a.Handler.AddBook(ctx, b.title, b.author, b.isbn, b.year, b.genre)
		if !r.OK {
			return false, fmt.Errorf("add book %q: %s", b.title, r.Message)
		}
		bookIDs = append(bookIDs, r.Value.ID)
	}
	userIDs := make([]int, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		r := a.Handler.AddUser(ctx, u.name, u.email, u.phone)
		if !r.OK {
			return false, fmt.Errorf("add user %q: %s", u.email, r.Message)
		}
		userIDs = append(userIDs, r.Value.ID)
	}
	for _, l := range sampleLoans {
		r := a.Handler.BorrowBook(ctx, userIDs[l[0]], bookIDs[l[1]])
		if !r.OK {
			return false, fmt.Errorf("borrow book %d: %s", bookIDs[l[1]], r.Message)
		}
	}
	return true, nil
}
