// Package metrics provides Prometheus collectors for the dispatch service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Location fix outcomes.
const (
	FixAccepted = "accepted"
	FixStale    = "stale"
	FixRejected = "rejected"
)

// Dispatch attempt outcomes.
const (
	DispatchAssigned = "assigned"
	DispatchConflict = "conflict"
	DispatchNoDriver = "no_driver"
	DispatchError    = "error"
)

// PromSink records ingest and dispatch outcomes in Prometheus metrics.
type PromSink struct {
	fixes     *prometheus.CounterVec
	dispatch  *prometheus.CounterVec
	published prometheus.Counter
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewPromSink registers the dispatch collectors on the provided registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	fixes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_location_fixes_total",
		Help: "Total number of ingested GPS observations by outcome",
	}, []string{"outcome"})
	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_assignment_attempts_total",
		Help: "Total number of automatic assignment attempts by outcome",
	}, []string{"outcome"})
	published := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_tracking_events_published_total",
		Help: "Total number of tracking snapshots pushed to subscribers",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_http_requests_total",
		Help: "Total number of HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_http_request_duration_seconds",
		Help:    "HTTP request duration by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	if err := reg.Register(fixes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fixes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(dispatch); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			dispatch = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(published); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			published = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		fixes:     fixes,
		dispatch:  dispatch,
		published: published,
		requests:  requests,
		duration:  duration,
	}, nil
}

// RecordFix counts one ingested observation with its outcome.
func (s *PromSink) RecordFix(outcome string) {
	s.fixes.WithLabelValues(outcome).Inc()
}

// RecordDispatch counts one automatic assignment attempt with its outcome.
func (s *PromSink) RecordDispatch(outcome string) {
	s.dispatch.WithLabelValues(outcome).Inc()
}

// RecordPublished counts one tracking snapshot pushed to subscribers.
func (s *PromSink) RecordPublished() {
	s.published.Inc()
}

// RecordRequest counts one HTTP request and observes its duration.
// The path label must be the route pattern, not the raw URL, to keep
// cardinality bounded.
func (s *PromSink) RecordRequest(method, path, status string, seconds float64) {
	s.requests.WithLabelValues(method, path, status).Inc()
	s.duration.WithLabelValues(method, path).Observe(seconds)
}
