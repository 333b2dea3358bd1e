// Package metrics records sweep counters in a private prometheus registry
// and dumps them in the text exposition format for a node_exporter
// textfile collector. Nothing is served over the network.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/itinera/itinerary"
)

// Metrics holds all prometheus metrics of one run.
type Metrics struct {
	registry *prometheus.Registry

	RecordsProcessed   *prometheus.CounterVec
	ItinerariesBuilt   *prometheus.CounterVec
	ItinerariesEmitted prometheus.Counter
	ExtensionsRejected prometheus.Counter
	CandidatesExamined *prometheus.CounterVec
	BuildTime          *prometheus.HistogramVec
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates the metrics on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RecordsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_processed_total",
			Help:      "The total number of flight records swept",
		}, []string{"strategy"}),
		ItinerariesBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_built_total",
			Help:      "The total number of itineraries created, singletons included",
		}, []string{"strategy"}),
		ItinerariesEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itineraries_emitted_total",
			Help:      "The total number of itineraries written to the output",
		}),
		ExtensionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extensions_rejected_total",
			Help:      "The total number of extensions refused as there-and-back",
		}),
		CandidatesExamined: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_examined_total",
			Help:      "The total number of lookup entries inspected",
		}, []string{"strategy"}),
		BuildTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time taken to sweep the input",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// ObserveBuild records the outcome of one sweep.
func (m *Metrics) ObserveBuild(strategy itinerary.Strategy, st itinerary.Stats, took time.Duration) {
	label := strategy.String()
	m.RecordsProcessed.WithLabelValues(label).Add(float64(st.Records))
	m.ItinerariesBuilt.WithLabelValues(label).Add(float64(st.Itineraries))
	m.CandidatesExamined.WithLabelValues(label).Add(float64(st.Examined))
	m.ExtensionsRejected.Add(float64(st.Rejected))
	m.BuildTime.WithLabelValues(label).Observe(took.Seconds())
}

// ObserveEmitted adds n written itineraries.
func (m *Metrics) ObserveEmitted(n int) {
	m.ItinerariesEmitted.Add(float64(n))
}

// ObserveError counts a failure of the named operation.
func (m *Metrics) ObserveError(operation string) {
	m.ErrorsCount.WithLabelValues(operation).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically writes every metric to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
