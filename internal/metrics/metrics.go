package metrics

import (
	"fmt"
	"path/filepath"

	"github.com/drakos74/tumor-knn/internal/math/ml"
	"github.com/drakos74/tumor-knn/internal/storage/file"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks the outcome of a run on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates a new metrics tracker.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics()
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Dataset records the size of a dataset.
func (m *Metrics) Dataset(name string, size int) {
	m.prometheus.Records.WithLabelValues(name).Set(float64(size))
}

// Observe records the outcome of an evaluation.
func (m *Metrics) Observe(e ml.Evaluation) {
	m.prometheus.observe(e)
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// WriteToTextfile writes the metrics in the text exposition format,
// as expected by the node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := file.MakeDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	return nil
}
