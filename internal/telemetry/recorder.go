package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Recorder fans events out to an EventEmitter and counts operations by outcome.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	emitter    EventEmitter
	operations metric.Int64Counter
	logger     *zap.Logger
}

// NewRecorder builds a Recorder. emitter and meter may be nil; logger may be nil (no-op).
func NewRecorder(emitter EventEmitter, meter metric.Meter, logger *zap.Logger) (*Recorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{emitter: emitter, logger: logger}
	if meter != nil {
		c, err := meter.Int64Counter(
			"library.operations",
			metric.WithDescription("Catalog and loan operations by name and outcome"),
			metric.WithUnit("{operation}"),
		)
		if err != nil {
			return nil, err
		}
		r.operations = c
	}
	return r, nil
}

// Event emits e. Failures are logged.
func (r *Recorder) Event(ctx context.Context, e *Event) {
	if r == nil || r.emitter == nil || e == nil {
		return
	}
	if err := r.emitter.Emit(ctx, e); err != nil {
		r.logger.Warn("telemetry: emit failed", zap.String("event_type", string(e.Type)), zap.Error(err))
	}
}

// Operation counts one call of op; outcome is "ok" or the rejection kind.
func (r *Recorder) Operation(ctx context.Context, op, outcome string) {
	if r == nil || r.operations == nil {
		return
	}
	r.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
