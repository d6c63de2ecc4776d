// Package telemetry records circulation events and operation outcomes. Everything here is
// best-effort: a telemetry failure is logged and never fails the catalog operation.
package telemetry

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EventType names a catalog mutation.
type EventType string

const (
	EventBookAdded    EventType = "book_added"
	EventBookRemoved  EventType = "book_removed"
	EventUserAdded    EventType = "user_added"
	EventUserRemoved  EventType = "user_removed"
	EventLoanBorrowed EventType = "loan_borrowed"
	EventLoanReturned EventType = "loan_returned"
)

// Event is one catalog mutation. Zero IDs mean "not applicable".
type Event struct {
	ID        string
	Type      EventType
	BookID    int
	UserID    int
	LoanID    int
	Metadata  []byte
	CreatedAt time.Time
}

// NewEvent returns an event of type t with a fresh ID and the current time.
func NewEvent(t EventType) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      t,
		CreatedAt: time.Now().UTC(),
	}
}

// Attributes returns the non-empty identifying fields as string pairs, in a fixed order.
func (e *Event) Attributes() [][2]string {
	out := [][2]string{{"event_id", e.ID}, {"event_type", string(e.Type)}}
	if e.BookID != 0 {
		out = append(out, [2]string{"book_id", strconv.Itoa(e.BookID)})
	}
	if e.UserID != 0 {
		out = append(out, [2]string{"user_id", strconv.Itoa(e.UserID)})
	}
	if e.LoanID != 0 {
		out = append(out, [2]string{"loan_id", strconv.Itoa(e.LoanID)})
	}
	return out
}

// EventEmitter emits events (e.g. to OTel Logs).
type EventEmitter interface {
	Emit(ctx context.Context, event *Event) error
}
