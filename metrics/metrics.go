// Package metrics provides Prometheus-based recording of obstruction-search
// trials.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridwalk/simulate"
)

// Recorder implements search.Recorder using Prometheus metrics.
type Recorder struct {
	trialsTotal   *prometheus.CounterVec
	trialSteps    prometheus.Histogram
	trialDuration prometheus.Histogram
}

// NewRecorder creates a Recorder whose collectors are registered on reg.
// Registering twice on the same registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		trialsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridwalk_trials_total",
				Help: "Total number of obstruction trials by outcome",
			},
			[]string{"outcome"},
		),
		trialSteps: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridwalk_trial_steps",
				Help:    "State transitions taken per obstruction trial",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8),
			},
		),
		trialDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridwalk_trial_duration_seconds",
				Help:    "Duration of obstruction trials in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
	}
}

// ObserveTrial records one finished trial.
func (r *Recorder) ObserveTrial(outcome simulate.Outcome, elapsed time.Duration) {
	r.trialsTotal.WithLabelValues(outcome.Kind.String()).Inc()
	r.trialSteps.Observe(float64(outcome.Steps))
	r.trialDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
