package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPromSink_RecordFix_CountsPerOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	sink.RecordFix(FixAccepted)
	sink.RecordFix(FixAccepted)
	sink.RecordFix(FixStale)

	expected := `
# HELP dispatch_location_fixes_total Total number of ingested GPS observations by outcome
# TYPE dispatch_location_fixes_total counter
dispatch_location_fixes_total{outcome="accepted"} 2
dispatch_location_fixes_total{outcome="stale"} 1
`
	require.NoError(t, testutil.CollectAndCompare(sink.fixes, strings.NewReader(expected)))
}

func TestPromSink_RecordDispatch_CountsPerOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	sink.RecordDispatch(DispatchAssigned)
	sink.RecordDispatch(DispatchConflict)
	sink.RecordDispatch(DispatchConflict)

	expected := `
# HELP dispatch_assignment_attempts_total Total number of automatic assignment attempts by outcome
# TYPE dispatch_assignment_attempts_total counter
dispatch_assignment_attempts_total{outcome="assigned"} 1
dispatch_assignment_attempts_total{outcome="conflict"} 2
`
	require.NoError(t, testutil.CollectAndCompare(sink.dispatch, strings.NewReader(expected)))
}

func TestPromSink_RecordRequest_ObservesDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	sink.RecordRequest("POST", "/api/v1/deliveries", "201", 0.042)
	sink.RecordRequest("POST", "/api/v1/deliveries", "409", 0.005)

	require.Equal(t, 2, testutil.CollectAndCount(sink.requests))
	require.Equal(t, 1, testutil.CollectAndCount(sink.duration))
}

func TestNewPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewPromSink(reg)
	require.NoError(t, err)

	second, err := NewPromSink(reg)
	require.NoError(t, err)

	first.RecordFix(FixAccepted)
	second.RecordFix(FixAccepted)

	require.Equal(t, float64(2), testutil.ToFloat64(second.fixes.WithLabelValues(FixAccepted)))
}
