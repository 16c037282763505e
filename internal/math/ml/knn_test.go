package ml

import (
	"testing"

	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/stretchr/testify/assert"
)

func TestConfusion_Matrix(t *testing.T) {
	c := Confusion{TP: 3, FP: 1, TN: 4, FN: 2}
	m := c.Matrix()

	assert.Equal(t, float64(c.TP), evaluation.GetTruePositives("malignant", m))
	assert.Equal(t, float64(c.FP), evaluation.GetFalsePositives("malignant", m))
	assert.Equal(t, float64(c.TN), evaluation.GetTrueNegatives("malignant", m))
	assert.Equal(t, float64(c.FN), evaluation.GetFalseNegatives("malignant", m))
}

func TestConfusion_Conventional(t *testing.T) {
	c := Confusion{TP: 3, FP: 1, TN: 4, FN: 2}
	s := c.Conventional()

	assert.InDelta(t, 0.6, float64(s.Recall), 1e-9)
	assert.InDelta(t, 0.8, float64(s.Specificity), 1e-9)
	assert.InDelta(t, 0.75, float64(s.Precision), 1e-9)
	assert.InDelta(t, 2.0/3, float64(s.F1), 1e-9)
	assert.InDelta(t, 0.7, float64(s.Accuracy), 1e-9)

	// the historical precision agrees with the conventional one
	assert.InDelta(t, float64(c.Metrics(c.Total()).Precision), float64(s.Precision), 1e-9)
}

func TestConfusion_Summary(t *testing.T) {
	c := Confusion{TP: 3, FP: 1, TN: 4, FN: 2}
	summary := c.Summary()
	assert.Contains(t, summary, "malignant")
	assert.Contains(t, summary, "benign")
}
