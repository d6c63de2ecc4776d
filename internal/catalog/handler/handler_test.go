package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/catalog/repository"
	"library-management/backend/internal/catalog/service"
	"library-management/backend/internal/catalog/store"
	loanservice "library-management/backend/internal/loan/service"
	"library-management/backend/internal/telemetry"
)

type harness struct {
	h     *Handler
	spans *tracetest.SpanRecorder
	logs  *observer.ObservedLogs
	now   time.Time
}

func newHarness(t *testing.T, repo repository.Repository) *harness {
	t.Helper()
	if repo == nil {
		repo = repository.NewMemoryRepository()
	}
	st, err := store.Open(context.Background(), repo)
	require.NoError(t, err)

	hs := &harness{
		spans: tracetest.NewSpanRecorder(),
		now:   time.Date(2024, time.January, 25, 14, 0, 0, 0, time.Local),
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(hs.spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	core, logs := observer.New(zap.DebugLevel)
	hs.logs = logs

	clock := func() time.Time { return hs.now }
	hs.h = New(
		service.NewCatalogService(st, clock, nil),
		loanservice.NewLoanService(st, clock, nil),
		Options{Logger: zap.New(core), Tracer: tp.Tracer("test")},
	)
	return hs
}

func TestHandler_FullScenario(t *testing.T) {
	hs := newHarness(t, nil)
	h := hs.h
	ctx := context.Background()

	book := h.AddBook(ctx, "Dune", "Frank Herbert", "978-0-4411-7271-9", 1965, "Science Fiction")
	require.True(t, book.OK, book.Message)
	assert.Equal(t, "Book added.", book.Message)
	assert.Equal(t, 1, book.Value.ID)

	user := h.AddUser(ctx, "Ada Lovelace", "ada@example.org", "0123456789")
	require.True(t, user.OK, user.Message)
	assert.Equal(t, "User added.", user.Message)

	loan := h.BorrowBook(ctx, user.Value.ID, book.Value.ID)
	require.True(t, loan.OK, loan.Message)
	assert.Equal(t, "Loan recorded.", loan.Message)
	assert.Equal(t, "2024-02-08", loan.Value.DueOn.String())

	again := h.BorrowBook(ctx, user.Value.ID, book.Value.ID)
	assert.False(t, again.OK)
	assert.Equal(t, "Book already borrowed.", again.Message)
	assert.Nil(t, again.Value)

	ret := h.ReturnBook(ctx, book.Value.ID)
	require.True(t, ret.OK, ret.Message)
	assert.Equal(t, "Book returned.", ret.Message)

	twice := h.ReturnBook(ctx, book.Value.ID)
	assert.False(t, twice.OK)
	assert.Equal(t, "No active loan found for this book.", twice.Message)

	loans := h.ListLoans(ctx)
	require.Len(t, loans.Value, 1)
	assert.Equal(t, domain.LoanStatusReturned, loans.Value[0].Status)
	assert.Equal(t, "Ada Lovelace", loans.Value[0].UserName)
}

func TestHandler_RejectionMessages(t *testing.T) {
	hs := newHarness(t, nil)
	h := hs.h
	ctx := context.Background()

	testCases := []struct {
		name string
		got  func() (bool, string)
		want string
	}{
		{"missing field", func() (bool, string) {
			r := h.AddBook(ctx, "", "A", "0-1234-5678-9", 2000, "G")
			return r.OK, r.Message
		}, "All fields are required."},
		{"bad isbn", func() (bool, string) {
			r := h.AddBook(ctx, "T", "A", "1234", 2000, "G")
			return r.OK, r.Message
		}, "Invalid ISBN (only ISBN-10 or ISBN-13 are accepted)."},
		{"bad year", func() (bool, string) {
			r := h.AddBook(ctx, "T", "A", "0-1234-5678-9", 3000, "G")
			return r.OK, r.Message
		}, "Invalid publication year."},
		{"bad email", func() (bool, string) {
			r := h.AddUser(ctx, "Ada", "ada", "0123456789")
			return r.OK, r.Message
		}, "Invalid email."},
		{"bad phone", func() (bool, string) {
			r := h.AddUser(ctx, "Ada", "ada@example.org", "12345")
			return r.OK, r.Message
		}, "Invalid phone number (10 digits expected)."},
		{"unknown user", func() (bool, string) {
			r := h.BorrowBook(ctx, 5, 5)
			return r.OK, r.Message
		}, "User not found."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := tc.got()
			assert.False(t, ok)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestHandler_SearchMessages(t *testing.T) {
	hs := newHarness(t, nil)
	h := hs.h
	ctx := context.Background()

	none := h.SearchBooks(ctx, "dune")
	assert.False(t, none.OK)
	assert.Equal(t, "No books found.", none.Message)
	assert.NotNil(t, none.Value)

	require.True(t, h.AddBook(ctx, "Dune", "Herbert", "0-1234-5678-1", 1965, "SF").OK)
	one := h.SearchBooks(ctx, "dune")
	assert.True(t, one.OK)
	assert.Equal(t, "1 book found.", one.Message)

	require.True(t, h.AddBook(ctx, "Dune Messiah", "Herbert", "0-1234-5678-2", 1969, "SF").OK)
	assert.Equal(t, "2 books found.", h.SearchBooks(ctx, "DUNE").Message)

	require.True(t, h.AddUser(ctx, "Ada", "ada@example.org", "0123456789").OK)
	assert.Equal(t, "1 user found.", h.SearchUsers(ctx, "ada").Message)
	assert.Equal(t, "No users found.", h.SearchUsers(ctx, "zed").Message)
}

func TestHandler_RemoveUnknownIsNotAnError(t *testing.T) {
	hs := newHarness(t, nil)
	r := hs.h.RemoveBook(context.Background(), 42)
	assert.True(t, r.OK)
	assert.False(t, r.Value)

	u := hs.h.RemoveUser(context.Background(), 42)
	assert.True(t, u.OK)
	assert.False(t, u.Value)
}

func TestHandler_Suggestions(t *testing.T) {
	hs := newHarness(t, nil)
	h := hs.h
	ctx := context.Background()
	require.True(t, h.AddBook(ctx, "Dune", "Frank Herbert", "0-1234-5678-1", 1965, "SF").OK)
	require.True(t, h.AddUser(ctx, "Ada", "ada@example.org", "0123456789").OK)

	books := h.SuggestBooks(ctx, "du")
	require.Len(t, books.Value, 1)
	assert.Equal(t, Suggestion{ID: 1, Label: "Dune - Frank Herbert"}, books.Value[0])

	users := h.SuggestUsers(ctx, "x")
	assert.False(t, users.OK)
	assert.Empty(t, users.Value)

	require.True(t, h.BorrowBook(ctx, 1, 1).OK)
	assert.Empty(t, h.SuggestBooks(ctx, "du").Value, "borrowed books are not suggested")
}

type brokenRepo struct{}

func (brokenRepo) Load(context.Context) (*domain.Catalog, error) { return nil, nil }

func (brokenRepo) Save(context.Context, *domain.Catalog) error {
	return errors.New("read-only file system")
}

func TestHandler_InternalErrorIsReportedAndTraced(t *testing.T) {
	hs := newHarness(t, brokenRepo{})
	r := hs.h.AddUser(context.Background(), "Ada", "ada@example.org", "0123456789")
	assert.False(t, r.OK)
	assert.Equal(t, "Internal error: save catalog: read-only file system", r.Message)

	spans := hs.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "user.add", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	errs := hs.logs.FilterMessage("operation failed").All()
	require.Len(t, errs, 1)
	assert.Equal(t, "user.add", errs[0].ContextMap()["operation"])
}

func TestHandler_SpansCarryOutcome(t *testing.T) {
	hs := newHarness(t, nil)
	ctx := context.Background()
	hs.h.BorrowBook(ctx, 1, 2)
	hs.h.ListBooks(ctx)

	spans := hs.spans.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "loan.borrow", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("library.outcome", "not_found"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("library.user_id", 1))
	assert.Equal(t, "book.list", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String("library.outcome", "ok"))

	assert.Equal(t, 1, hs.logs.FilterMessage("operation rejected").Len())
}

func TestHandler_CountsOperations(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()
	rec, err := telemetry.NewRecorder(nil, mp.Meter("test"), nil)
	require.NoError(t, err)

	st, err := store.Open(context.Background(), repository.NewMemoryRepository())
	require.NoError(t, err)
	h := New(service.NewCatalogService(st, nil, nil), loanservice.NewLoanService(st, nil, nil), Options{Recorder: rec})
	ctx := context.Background()
	h.AddUser(ctx, "Ada", "ada@example.org", "0123456789")
	h.AddUser(ctx, "Ada", "ada@example.org", "0123456789")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value("outcome")
				counts[outcome.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"ok": 1, "conflict": 1}, counts)
}
