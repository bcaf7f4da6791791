// Package metrics holds the instruments shared by the HTTP handlers.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Operations records request counts and latencies per endpoint operation.
type Operations struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOperations creates the operation instruments on the given meter.
func NewOperations(meter metric.Meter, prefix string) (*Operations, error) {
	requests, err := meter.Int64Counter(prefix+"_requests_total",
		metric.WithDescription("Number of handled requests per operation and status code."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram(prefix+"_request_duration_seconds",
		metric.WithDescription("Latency of handled requests per operation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Operations{requests: requests, duration: duration}, nil
}

// Record adds one observation for operation op finished with statusCode.
func (o *Operations) Record(ctx context.Context, op string, statusCode int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.Int("status_code", statusCode),
	)
	o.requests.Add(ctx, 1, attrs)
	o.duration.Record(ctx, elapsed.Seconds(), attrs)
}
