package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the registry service.
type Metrics struct {
	CredentialsSubmitted prometheus.Counter
	CredentialsVerified  prometheus.Counter
	CredentialsRevoked   prometheus.Counter
	RegisteredIssuers    prometheus.Gauge
	AuthorizationDenied  *prometheus.CounterVec
	EventsAppended       *prometheus.CounterVec
	EndpointLatency      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CredentialsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_credentials_submitted_total",
			Help: "Total number of credentials submitted",
		}),
		CredentialsVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_credentials_verified_total",
			Help: "Total number of credentials verified by issuers",
		}),
		CredentialsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_credentials_revoked_total",
			Help: "Total number of credentials revoked",
		}),
		RegisteredIssuers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "attestry_registered_issuers",
			Help: "Current number of registered issuers",
		}),
		AuthorizationDenied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attestry_authorization_denied_total",
			Help: "Total number of denied operations, labeled by operation",
		}, []string{"operation"}),
		EventsAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attestry_events_appended_total",
			Help: "Total number of events appended to the trail, labeled by kind",
		}, []string{"kind"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "attestry_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) IncrementCredentialsSubmitted() {
	m.CredentialsSubmitted.Inc()
}

func (m *Metrics) IncrementCredentialsVerified() {
	m.CredentialsVerified.Inc()
}

func (m *Metrics) IncrementCredentialsRevoked() {
	m.CredentialsRevoked.Inc()
}

func (m *Metrics) AddRegisteredIssuers(delta int) {
	m.RegisteredIssuers.Add(float64(delta))
}

func (m *Metrics) IncrementAuthorizationDenied(operation string) {
	m.AuthorizationDenied.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementEventsAppended(kind string) {
	m.EventsAppended.WithLabelValues(kind).Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
