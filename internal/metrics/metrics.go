// Package metrics exposes Prometheus metrics for the session registry.
// Metrics are fed by subscribing to each store the registry creates, so
// the store itself stays unaware of them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aanand-mishra/careerpath/internal/session"
)

// Metrics holds the collectors.
type Metrics struct {
	Mutations      *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	CreatedTotal   prometheus.Counter
	UploadBytes    *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careerpath",
			Name:      "session_mutations_total",
			Help:      "Session store mutations by operation.",
		}, []string{"op"}),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "careerpath",
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		}),

		CreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "careerpath",
			Name:      "sessions_created_total",
			Help:      "Sessions created since start.",
		}),

		UploadBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careerpath",
			Name:      "upload_bytes_total",
			Help:      "Bytes received by upload kind.",
		}, []string{"kind"}),
	}
}

// Attach wires m into r: every created store is counted and observed, and
// every eviction lowers the active gauge.
func (m *Metrics) Attach(r *session.Registry) {
	r.OnCreate(func(_ string, s *session.Store) {
		m.CreatedTotal.Inc()
		m.ActiveSessions.Inc()
		s.Subscribe(func(c session.Change) {
			m.Mutations.WithLabelValues(c.Op).Inc()
		})
	})
	r.OnEvict(func(string) {
		m.ActiveSessions.Dec()
	})
}

// ObserveUpload records n received bytes for kind.
func (m *Metrics) ObserveUpload(kind string, n int) {
	if m == nil {
		return
	}
	m.UploadBytes.WithLabelValues(kind).Add(float64(n))
}
