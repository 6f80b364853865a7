package report

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	suiteerrors "github.com/AndreyAkinshin/suitereport/internal/errors"
)

const (
	MetricsNamespace = "suitereport"
)

// WriteMetrics exports the report counts in the Prometheus text format, for
// pickup by the node exporter textfile collector.
func WriteMetrics(path string, rep *Report) error {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	testsTotal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Number of tests with at least one status line",
	})
	phaseResults := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "phase_results",
		Help:      "Count of status lines per phase and result",
	}, []string{
		"phase",
		"result",
	})
	testDuration := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "test_duration_seconds",
		Help:      "Build and run time per test and stage",
	}, []string{
		"test",
		"stage",
	})
	maxNormalizedDiff := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "max_normalized_diff",
		Help:      "Largest normalized baseline difference per test and variable",
	}, []string{
		"test",
		"variable",
	})

	testsTotal.Set(float64(rep.Summary.NumTests()))
	for _, result := range rep.Summary.Results() {
		for _, phase := range rep.Summary.Phases() {
			phaseResults.WithLabelValues(phase, result).Set(float64(rep.Summary.Count(result, phase)))
		}
	}
	for _, row := range rep.Timings {
		testDuration.WithLabelValues(row.Name, "sharedlib_build").Set(row.LibTime)
		testDuration.WithLabelValues(row.Name, "model_build").Set(row.BuildTime)
		testDuration.WithLabelValues(row.Name, "run").Set(row.RunTime)
	}
	for _, m := range rep.MaxDiffs {
		if math.IsNaN(m.NormalizedDiff) {
			continue
		}
		maxNormalizedDiff.WithLabelValues(m.Test, m.Variable).Set(m.NormalizedDiff)
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return suiteerrors.Wrap(err, "write metrics")
	}
	return nil
}
