package commands

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ot/emd"
)

// Outcome labels of the solves counter.
const (
	outcomeOptimal   = "optimal"
	outcomeInfeas    = "infeasible"
	outcomeUnbounded = "unbounded"
	outcomeMaxIter   = "max_iterations"
	outcomeInvalid   = "invalid_input"
)

// solveMetrics collects one run's metrics in a private registry so they can
// be written as a node-exporter textfile.
type solveMetrics struct {
	reg        *prometheus.Registry
	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	iterations prometheus.Gauge
	distance   prometheus.Gauge
}

func newSolveMetrics() *solveMetrics {
	m := &solveMetrics{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emd",
			Name:      "solves_total",
			Help:      "EMD solves by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "emd",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of the EMD pipeline.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "emd",
			Name:      "simplex_iterations",
			Help:      "Pivots performed by the last successful solve.",
		}),
		distance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "emd",
			Name:      "distance",
			Help:      "Earth Mover's Distance of the last successful solve.",
		}),
	}
	m.reg.MustRegister(m.solves, m.duration, m.iterations, m.distance)

	return m
}

// observe records one solve.
func (m *solveMetrics) observe(res emd.Result, err error, elapsed time.Duration) {
	m.solves.WithLabelValues(outcomeOf(err)).Inc()
	m.duration.Observe(elapsed.Seconds())
	if err == nil {
		m.iterations.Set(float64(res.Iterations))
		m.distance.Set(res.EMD)
	}
}

// write stores the registry in Prometheus text format at path.
func (m *solveMetrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

// outcomeOf maps a pipeline error to a counter label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOptimal
	case errors.Is(err, emd.ErrInfeasible):
		return outcomeInfeas
	case errors.Is(err, emd.ErrUnbounded):
		return outcomeUnbounded
	case errors.Is(err, emd.ErrMaxIterationsReached):
		return outcomeMaxIter
	default:
		return outcomeInvalid
	}
}
