// Package handler is the boundary front ends call. It turns service calls into results,
// and wraps each one in a span, an operation count and a log line.
package handler

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"library-management/backend/internal/catalog/service"
	loanservice "library-management/backend/internal/loan/service"
	"library-management/backend/internal/platform/result"
	"library-management/backend/internal/telemetry"
)

// TracerName is the instrumentation scope of handler spans.
const TracerName = "library-management/backend/internal/catalog/handler"

// Options carries the optional collaborators of a Handler.
type Options struct {
	Recorder *telemetry.Recorder
	Logger   *zap.Logger
	// Tracer defaults to the global tracer provider.
	Tracer trace.Tracer
}

// Handler exposes catalog, loan and suggestion operations as results.
type Handler struct {
	catalog  *service.CatalogService
	loans    *loanservice.LoanService
	recorder *telemetry.Recorder
	logger   *zap.Logger
	tracer   trace.Tracer
}

// New returns a Handler over the two services.
func New(catalog *service.CatalogService, loans *loanservice.LoanService, opts Options) *Handler {
	h := &Handler{
		catalog:  catalog,
		loans:    loans,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		tracer:   opts.Tracer,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer(TracerName)
	}
	return h
}

// observe runs fn inside a span named op and records its outcome.
func (h *Handler) observe(ctx context.Context, op string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := h.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	outcome := result.Outcome(err)
	span.SetAttributes(attribute.String("library.outcome", outcome))

	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("outcome", outcome),
		zap.Duration("duration", time.Since(start)),
	}
	switch outcome {
	case result.OutcomeOK:
		h.logger.Debug("operation completed", fields...)
	case result.OutcomeInternal:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.Error("operation failed", append(fields, zap.Error(err))...)
	default:
		h.logger.Debug("operation rejected", append(fields, zap.String("reason", err.Error()))...)
	}
	h.recorder.Operation(ctx, op, outcome)
	return err
}

// countMessage renders "No books found.", "1 book found." or "N books found.".
func countMessage(n int, singular, plural string) string {
	switch n {
	case 0:
		return fmt.Sprintf("No %s found.", plural)
	case 1:
		return fmt.Sprintf("1 %s found.", singular)
	default:
		return fmt.Sprintf("%d %s found.", n, plural)
	}
}

// searchResult is OK only when something matched.
func searchResult[T any](items []T, singular, plural string) result.Result[[]T] {
	r := result.Success(items, countMessage(len(items), singular, plural))
	r.OK = len(items) > 0
	return r
}
