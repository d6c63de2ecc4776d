package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"library-management/backend/internal/app"
	"library-management/backend/internal/config"
)

// session runs command lines against one in-memory catalog shared across invocations.
type session struct {
	t   *testing.T
	app *app.App
}

func newSession(t *testing.T) *session {
	t.Helper()
	a, err := app.Open(context.Background(), &config.Config{StoreDriver: config.StoreDriverMemory, LogLevel: "error"})
	require.NoError(t, err)
	return &session{t: t, app: a}
}

func (s *session) run(args ...string) (string, error) {
	s.t.Helper()
	var out bytes.Buffer
	c := newCLI(func(context.Context) (*app.App, error) { return s.app, nil })
	err := c.execute(context.Background(), args, &out)
	return out.String(), err
}

func (s *session) mustRun(args ...string) string {
	s.t.Helper()
	out, err := s.run(args...)
	require.NoError(s.t, err, out)
	return out
}

func TestCLI_BookLifecycle(t *testing.T) {
	s := newSession(t)

	out := s.mustRun("book", "add", "--title", "Dune", "--author", "Frank Herbert",
		"--isbn", "978-0-4411-7271-9", "--year", "1965", "--genre", "Science Fiction")
	assert.Contains(t, out, "Book added.")
	assert.Contains(t, out, "978-0-4411-7271-9")

	out = s.mustRun("book", "search", "herbert")
	assert.Contains(t, out, "1 book found.")
	assert.Contains(t, out, "Dune")

	out, err := s.run("book", "search", "tolkien")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "No books found.")

	out = s.mustRun("book", "remove", "1")
	assert.Contains(t, out, "Book removed.")

	out = s.mustRun("book", "list")
	assert.Contains(t, out, "0 books in catalog.")
}

func TestCLI_RejectionExitsWithMessage(t *testing.T) {
	s := newSession(t)
	out, err := s.run("book", "add", "--title", "Dune", "--author", "Herbert", "--isbn", "123", "--year", "1965", "--genre", "SF")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "Invalid ISBN (only ISBN-10 or ISBN-13 are accepted).\n", out)

	out, err = s.run("book", "add", "--title", "Dune")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "All fields are required.\n", out)
}

func TestCLI_LoanFlow(t *testing.T) {
	s := newSession(t)
	s.mustRun("book", "add", "--title", "Dune", "--author", "Frank Herbert", "--isbn", "0-1234-5678-9", "--year", "1965", "--genre", "SF")
	s.mustRun("user", "add", "--name", "Ada Lovelace", "--email", "ada@example.org", "--phone", "0123456789")

	out := s.mustRun("loan", "borrow", "1", "1")
	assert.Contains(t, out, "Loan recorded.")

	out, err := s.run("loan", "borrow", "1", "1")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "Book already borrowed.")

	out = s.mustRun("loan", "list", "--user", "1")
	assert.Contains(t, out, "1 active loans.")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "active")

	out = s.mustRun("loan", "return", "1")
	assert.Contains(t, out, "Book returned.")

	out = s.mustRun("loan", "list")
	assert.Contains(t, out, "returned")

	_, err = s.run("loan", "return", "1")
	assert.ErrorIs(t, err, errRejected)
}

func TestCLI_JSONOutput(t *testing.T) {
	s := newSession(t)
	out := s.mustRun("--output", "json", "user", "add", "--name", "Ada", "--email", "ada@example.org", "--phone", "0123456789")

	var got struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
		Value   struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		} `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.OK)
	assert.Equal(t, "User added.", got.Message)
	assert.Equal(t, 1, got.Value.ID)
	assert.Equal(t, "ada@example.org", got.Value.Email)
}

func TestCLI_YAMLOutput(t *testing.T) {
	s := newSession(t)
	s.mustRun("book", "add", "--title", "Dune", "--author", "Frank Herbert", "--isbn", "0-1234-5678-9", "--year", "1965", "--genre", "SF")
	s.mustRun("user", "add", "--name", "Ada", "--email", "ada@example.org", "--phone", "0123456789")
	s.mustRun("loan", "borrow", "1", "1")

	out := s.mustRun("-o", "yaml", "loan", "list")
	var got struct {
		OK    bool `yaml:"ok"`
		Value []struct {
			ID         int     `yaml:"id"`
			UserName   string  `yaml:"userName"`
			BookTitle  string  `yaml:"bookTitle"`
			DueOn      string  `yaml:"dueOn"`
			ReturnedOn *string `yaml:"returnedOn"`
			Status     string  `yaml:"status"`
		} `yaml:"value"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)
	require.Len(t, got.Value, 1)
	assert.Equal(t, "Ada", got.Value[0].UserName)
	assert.Equal(t, "Dune", got.Value[0].BookTitle)
	assert.Equal(t, "active", got.Value[0].Status)
	assert.Nil(t, got.Value[0].ReturnedOn)
	assert.Len(t, got.Value[0].DueOn, len("2006-01-02"))
}

func TestCLI_Suggest(t *testing.T) {
	s := newSession(t)
	s.mustRun("user", "add", "--name", "Ada Lovelace", "--email", "ada@example.org", "--phone", "0123456789")

	out := s.mustRun("suggest", "users", "love")
	assert.Contains(t, out, "Ada Lovelace (ada@example.org)")

	out, err := s.run("suggest", "users", "a")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "No users found.")
}

func TestCLI_ArgumentErrors(t *testing.T) {
	s := newSession(t)
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"bad id", []string{"book", "remove", "abc"}, `invalid book id "abc"`},
		{"zero id", []string{"loan", "return", "0"}, `invalid book id "0"`},
		{"bad format", []string{"-o", "xml", "book", "list"}, `unknown output format "xml"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.run(tc.args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errRejected)
			assert.True(t, strings.Contains(err.Error(), tc.want), err.Error())
		})
	}
}
