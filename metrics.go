package solarvibe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the engine counters. A nil *Metrics records nothing.
type Metrics struct {
	frames        prometheus.Counter
	updateSeconds prometheus.Histogram
	floorClamps   *prometheus.CounterVec
	simulatedDays prometheus.Gauge
}

// NewMetrics creates the engine collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solarvibe",
			Name:      "frames_total",
			Help:      "Number of body state updates.",
		}),
		updateSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "solarvibe",
			Name:      "update_duration_seconds",
			Help:      "Time spent updating every body of a frame.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		floorClamps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solarvibe",
			Name:      "floor_clamps_total",
			Help:      "Number of positions pushed out to the minimum distance from the parent.",
		}, []string{"body"}),
		simulatedDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solarvibe",
			Name:      "simulated_days_since_j2000",
			Help:      "Simulated instant of the last frame, in days since J2000.",
		}),
	}
	reg.MustRegister(m.frames, m.updateSeconds, m.floorClamps, m.simulatedDays)
	return m
}

// observeFrame records a finished update.
func (m *Metrics) observeFrame(elapsed time.Duration, days float64) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.updateSeconds.Observe(elapsed.Seconds())
	m.simulatedDays.Set(days)
}

// floorClamp records a position moved out to the minimum distance.
func (m *Metrics) floorClamp(body string) {
	if m == nil {
		return
	}
	m.floorClamps.WithLabelValues(body).Inc()
}
