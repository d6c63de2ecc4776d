// Package result is the success-flag, message, payload shape that front ends branch on.
package result

import (
	"errors"

	"library-management/backend/internal/catalog/domain"
)

// Outcome labels used for metrics, spans and logs.
const (
	OutcomeOK            = "ok"
	OutcomeValidation    = "validation"
	OutcomeConflict      = "conflict"
	OutcomeLimitExceeded = "limit_exceeded"
	OutcomeNotFound      = "not_found"
	OutcomeInternal      = "internal"
)

// Result is returned by every front-end operation. Value is the zero value when OK is false.
type Result[T any] struct {
	OK      bool   `json:"ok" yaml:"ok"`
	Message string `json:"message" yaml:"message"`
	Value   T      `json:"value" yaml:"value"`
}

// Success returns an OK result carrying v.
func Success[T any](v T, message string) Result[T] {
	return Result[T]{OK: true, Message: message, Value: v}
}

// Failure returns a failed result whose message is derived from err.
func Failure[T any](err error) Result[T] {
	return Result[T]{Message: Message(err)}
}

// Message returns the user-facing text for err. Rejections carry their own message;
// anything else is reported as an internal error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "Internal error: " + err.Error()
}

// Outcome classifies err by its domain kind.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, domain.ErrLimitExceeded):
		return OutcomeLimitExceeded
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeInternal
	}
}
