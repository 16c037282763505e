package metrics

import (
	"strconv"

	"github.com/drakos74/tumor-knn/internal/math/ml"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "knn"

// Prometheus holds the prometheus collectors of an evaluation run.
type Prometheus struct {
	Records   *prometheus.GaugeVec
	Confusion *prometheus.GaugeVec
	Metrics   *prometheus.GaugeVec
	Standard  *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Records: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "records",
				Help:      "Number of records per dataset.",
			}, []string{"dataset"}),
		Confusion: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "confusion",
				Help:      "Confusion counts per k, malignant being the positive class.",
			}, []string{"k", "outcome"}),
		Metrics: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "evaluation",
				Help:      "Evaluation metrics per k as reported by the classifier.",
			}, []string{"k", "metric"}),
		Standard: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "evaluation_standard",
				Help:      "Conventional evaluation metrics per k.",
			}, []string{"k", "metric"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Records, p.Confusion, p.Metrics, p.Standard}
}

func (p Prometheus) observe(e ml.Evaluation) {
	k := strconv.Itoa(e.K)
	p.Confusion.WithLabelValues(k, "tp").Set(float64(e.Confusion.TP))
	p.Confusion.WithLabelValues(k, "fp").Set(float64(e.Confusion.FP))
	p.Confusion.WithLabelValues(k, "tn").Set(float64(e.Confusion.TN))
	p.Confusion.WithLabelValues(k, "fn").Set(float64(e.Confusion.FN))

	p.Metrics.WithLabelValues(k, "sensitivity").Set(float64(e.Metrics.Sensitivity))
	p.Metrics.WithLabelValues(k, "specificity").Set(float64(e.Metrics.Specificity))
	p.Metrics.WithLabelValues(k, "accuracy").Set(float64(e.Metrics.Accuracy))
	p.Metrics.WithLabelValues(k, "precision").Set(float64(e.Metrics.Precision))

	p.Standard.WithLabelValues(k, "recall").Set(float64(e.Standard.Recall))
	p.Standard.WithLabelValues(k, "specificity").Set(float64(e.Standard.Specificity))
	p.Standard.WithLabelValues(k, "precision").Set(float64(e.Standard.Precision))
	p.Standard.WithLabelValues(k, "f1").Set(float64(e.Standard.F1))
	p.Standard.WithLabelValues(k, "accuracy").Set(float64(e.Standard.Accuracy))
}
