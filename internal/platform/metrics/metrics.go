package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects HTTP and roster metrics.
type Recorder struct {
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	rosters  *prometheus.CounterVec
}

// New registers the service metrics on reg; a nil reg gets a fresh registry.
func New(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests by route pattern and status code",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	rosters := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_generations_total",
		Help: "Roster generations by vehicle and outcome",
	}, []string{"vehicle_id", "outcome"})

	for _, c := range []prometheus.Collector{requests, latency, rosters} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return &Recorder{gatherer: reg, requests: requests, latency: latency, rosters: rosters}, nil
}

// ObserveRequest records one served request.
func (r *Recorder) ObserveRequest(method, route string, status int, dur time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(method, route).Observe(dur.Seconds())
}

// Roster generation outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeCached    = "cached"
	OutcomeFailed    = "failed"

	// Label for lookups of vehicles that have no schedule.
	VehicleUnknown = "unknown"
)

// ObserveRoster records one roster lookup.
func (r *Recorder) ObserveRoster(vehicleID, outcome string) {
	if r == nil {
		return
	}
	r.rosters.WithLabelValues(vehicleID, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
