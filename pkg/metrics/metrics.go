package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Form submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
)

// Metrics holds the dashboard's domain metrics
type Metrics struct {
	ScreenViews     *prometheus.CounterVec
	SearchResults   *prometheus.HistogramVec
	FormSubmissions *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. A nil reg leaves
// them unregistered, which tests rely on.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ScreenViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_views_total",
			Help:      "Total number of screen renders and list queries",
		}, []string{"screen"}),
		SearchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of records surviving a screen filter",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 25},
		}, []string{"screen"}),
		FormSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Total number of dialog form submissions",
		}, []string{"form", "outcome"}),
	}

	if reg != nil {
		reg.MustRegister(m.ScreenViews, m.SearchResults, m.FormSubmissions)
	}
	return m
}

// ObserveList records a filtered list query.
func (m *Metrics) ObserveList(screen string, results int) {
	if m == nil {
		return
	}
	m.ScreenViews.WithLabelValues(screen).Inc()
	m.SearchResults.WithLabelValues(screen).Observe(float64(results))
}

// ObserveForm records a dialog submission with one of the outcomes above.
func (m *Metrics) ObserveForm(form, outcome string) {
	if m == nil {
		return
	}
	m.FormSubmissions.WithLabelValues(form, outcome).Inc()
}
