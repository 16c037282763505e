package ml

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	knnmath "github.com/drakos74/tumor-knn/internal/math"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/rs/zerolog/log"
)

// Confusion holds the confusion counts of a binary classification.
// Malignant is the positive class.
type Confusion struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

// Add registers the outcome of a single prediction.
func (c *Confusion) Add(actual, predicted model.Label) error {
	if !actual.Valid() {
		return fmt.Errorf("could not evaluate actual label '%v': %w", actual, model.ErrUnknownLabel)
	}
	if !predicted.Valid() {
		return fmt.Errorf("could not evaluate predicted label '%v': %w", predicted, model.ErrUnknownLabel)
	}
	switch {
	case predicted == model.Malignant && actual == model.Malignant:
		c.TP++
	case predicted == model.Malignant:
		c.FP++
	case actual == model.Benign:
		c.TN++
	default:
		c.FN++
	}
	return nil
}

// Total returns the number of registered predictions.
func (c Confusion) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Metric is a derived evaluation metric.
// It is NaN if its denominator was zero.
type Metric float64

// Defined returns false if the metric could not be computed.
func (m Metric) Defined() bool {
	return !math.IsNaN(float64(m))
}

// String formats the metric, rendering NaN as undefined.
func (m Metric) String() string {
	return knnmath.FormatPrecision(float64(m), 4)
}

// MarshalJSON encodes an undefined metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Defined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON decodes null as an undefined metric.
func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Metric(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Metric(f)
	return nil
}

// Metrics are the derived metrics of a confusion matrix.
// NOTE : sensitivity and specificity follow the (TP,FP) and (TN,FN) formulas of the
// historical report, not the conventional (TP,FN) and (TN,FP) ones.
// See Conventional for the latter.
type Metrics struct {
	// Sensitivity is TP/(TP+FP) as a percentage.
	Sensitivity Metric `json:"sensitivity"`
	// Specificity is TN/(TN+FN) as a percentage.
	Specificity Metric `json:"specificity"`
	// Accuracy is (TP+TN) over the size of the test set.
	Accuracy Metric `json:"accuracy"`
	// Precision is TP/(TP+FP).
	Precision Metric `json:"precision"`
}

// Metrics derives the evaluation metrics for a test set of size n.
func (c Confusion) Metrics(n int) Metrics {
	tp, fp, tn, fn := float64(c.TP), float64(c.FP), float64(c.TN), float64(c.FN)
	return Metrics{
		Sensitivity: Metric(knnmath.Ratio(tp, tp+fp) * 100),
		Specificity: Metric(knnmath.Ratio(tn, tn+fn) * 100),
		Accuracy:    Metric(knnmath.Ratio(tp+tn, float64(n))),
		Precision:   Metric(knnmath.Ratio(tp, tp+fp)),
	}
}

// Evaluation is the outcome of classifying a test set for a given k.
type Evaluation struct {
	K           int                `json:"k"`
	Size        int                `json:"size"`
	Confusion   Confusion          `json:"confusion"`
	Metrics     Metrics            `json:"metrics"`
	Standard    Standard           `json:"standard"`
	Predictions []model.Prediction `json:"predictions"`
}

// Predict classifies a single query against the reference set.
func Predict(query model.Record, reference []model.Record, k int) (model.Prediction, error) {
	neighbours, err := Nearest(query, reference, k)
	if err != nil {
		return model.Prediction{}, err
	}
	label, err := Classify(neighbours)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("could not predict '%s': %w", query.ID, err)
	}
	log.Debug().
		Str("id", query.ID).
		Int("k", k).
		Str("actual", query.Label.String()).
		Str("predicted", label.String()).
		Float64("radius", neighbours[len(neighbours)-1].Distance).
		Msg("prediction")
	return model.Prediction{
		ID:        query.ID,
		Actual:    query.Label,
		Predicted: label,
	}, nil
}

// Evaluate classifies every test record against the training set and
// accumulates the confusion counts.
// Both sets are expected to be normalized with the same bounds.
func Evaluate(ctx context.Context, train, test []model.Record, k int) (Evaluation, error) {
	evaluation := Evaluation{
		K:           k,
		Size:        len(test),
		Predictions: make([]model.Prediction, 0, len(test)),
	}
	if len(test) == 0 {
		return evaluation, fmt.Errorf("could not evaluate test set: %w", ErrEmptyDataset)
	}
	if k > len(train) {
		log.Warn().
			Int("k", k).
			Int("train", len(train)).
			Msg("k exceeds the training set, every record votes")
	}
	for _, record := range test {
		if err := ctx.Err(); err != nil {
			return evaluation, fmt.Errorf("evaluation for k=%d interrupted: %w", k, err)
		}
		prediction, err := Predict(record, train, k)
		if err != nil {
			return evaluation, err
		}
		if err := evaluation.Confusion.Add(prediction.Actual, prediction.Predicted); err != nil {
			return evaluation, fmt.Errorf("could not evaluate '%s': %w", record.ID, err)
		}
		evaluation.Predictions = append(evaluation.Predictions, prediction)
	}
	evaluation.Metrics = evaluation.Confusion.Metrics(len(test))
	evaluation.Standard = evaluation.Confusion.Conventional()
	return evaluation, nil
}
