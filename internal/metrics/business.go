package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/allisson/envelope/internal/errors"
)

// Outcome labels attached to every envelope operation as the "status" attribute.
const (
	StatusSuccess              = "success"
	StatusAuthenticationFailed = "authentication_failed"
	StatusInvalidInput         = "invalid_input"
	StatusEntropyUnavailable   = "entropy_unavailable"
	StatusCanceled             = "canceled"
	StatusDeadlineExceeded     = "deadline_exceeded"
	StatusError                = "error"
)

// OperationStatus maps the result of an operation to its status label.
//
// Authentication failures, rejected input and a broken random source each get
// their own label so that tampering and misconfiguration can be told apart.
// Context cancellation is labelled separately because the operation never
// completed and no failure event is recorded for it.
func OperationStatus(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case apperrors.Is(err, context.Canceled):
		return StatusCanceled
	case apperrors.Is(err, context.DeadlineExceeded):
		return StatusDeadlineExceeded
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return StatusAuthenticationFailed
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return StatusInvalidInput
	case apperrors.Is(err, apperrors.ErrUnavailable):
		return StatusEntropyUnavailable
	default:
		return StatusError
	}
}

// RecordOutcome records both the count and the duration of an operation that
// started at start and finished with err.
func RecordOutcome(ctx context.Context, m BusinessMetrics, domain, operation string, start time.Time, err error) {
	status := OperationStatus(err)
	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}

// BusinessMetrics records envelope operations: how many ran and how long they
// took, labelled by domain, operation and status.
type BusinessMetrics interface {
	// RecordOperation counts one operation, e.g. ("envelope", "envelope_open", "authentication_failed").
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration adds duration, in seconds, to the operation histogram.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
}

// NewBusinessMetrics creates the counter "<namespace>_operations_total" and the
// histogram "<namespace>_operation_duration_seconds" on meterProvider.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Envelope operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	// Key derivation dominates latency; the default buckets cover it up to 10s.
	durations, err := meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Envelope operation latency by outcome"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{operations: operations, durations: durations}, nil
}

func labels(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, labels(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), labels(domain, operation, status))
}

// NoOpBusinessMetrics discards everything. The container uses it when
// METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}
