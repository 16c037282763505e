package ml

import (
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Standard are the conventional classification metrics for the positive class,
// as computed by golearn.
type Standard struct {
	// Recall is TP/(TP+FN).
	Recall Metric `json:"recall"`
	// Specificity is TN/(TN+FP) e.g. the recall of the negative class.
	Specificity Metric `json:"specificity"`
	Precision   Metric `json:"precision"`
	F1          Metric `json:"f1"`
	Accuracy    Metric `json:"accuracy"`
}

// Matrix converts the counts into a golearn confusion matrix,
// keyed by actual and then predicted class name.
func (c Confusion) Matrix() evaluation.ConfusionMatrix {
	malignant := model.Malignant.String()
	benign := model.Benign.String()
	return evaluation.ConfusionMatrix{
		malignant: {
			malignant: c.TP,
			benign:    c.FN,
		},
		benign: {
			malignant: c.FP,
			benign:    c.TN,
		},
	}
}

// Conventional derives the standard metrics through golearn.
func (c Confusion) Conventional() Standard {
	m := c.Matrix()
	positive := model.Malignant.String()
	return Standard{
		Recall:      Metric(evaluation.GetRecall(positive, m)),
		Specificity: Metric(evaluation.GetRecall(model.Benign.String(), m)),
		Precision:   Metric(evaluation.GetPrecision(positive, m)),
		F1:          Metric(evaluation.GetF1Score(positive, m)),
		Accuracy:    Metric(evaluation.GetAccuracy(m)),
	}
}

// Summary returns the golearn per-class summary of the counts.
func (c Confusion) Summary() string {
	return evaluation.GetSummary(c.Matrix())
}
