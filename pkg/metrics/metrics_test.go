package metrics_test

import (
	"context"
	"testing"
	"time"

	"usermeta/pkg/metrics"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOperations_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	ops, err := metrics.NewOperations(mp.Meter("test"), "usermetadata")
	require.NoError(t, err)

	ctx := context.Background()
	ops.Record(ctx, "findById", 200, 5*time.Millisecond)
	ops.Record(ctx, "findById", 404, time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = true
		if m.Name == "usermetadata_requests_total" {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 2, "one series per status code")
		}
	}
	require.True(t, names["usermetadata_requests_total"])
	require.True(t, names["usermetadata_request_duration_seconds"])
}
