package artic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as the "outcome" label
const (
	OutcomeOK        = "ok"
	OutcomeOffline   = "offline"
	OutcomeStatus    = "status"
	OutcomeMalformed = "malformed"
)

// Metrics instruments page fetches. A nil *Metrics records nothing.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

// NewMetrics registers the fetch collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FetchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "fetch_total",
			Help:      "Catalog page fetches by outcome.",
		}, []string{"outcome"}),
		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vitrine",
			Name:      "fetch_duration_seconds",
			Help:      "Catalog page fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(outcome).Inc()
	m.FetchDuration.Observe(time.Since(started).Seconds())
}
