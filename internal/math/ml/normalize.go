package ml

import (
	"fmt"

	"github.com/drakos74/tumor-knn/internal/buffer"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/rs/zerolog/log"
)

// Range is the observed range of an attribute.
// Mean and StDev describe the attribute and do not take part in scaling.
type Range struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	StDev float64 `json:"stdev"`
}

// Degenerate returns true if the attribute has no variance.
func (r Range) Degenerate() bool {
	return r.Max == r.Min
}

// Bounds holds the min-max range of every attribute of a reference dataset.
// It is computed once from the training set and applied to every record of the run.
type Bounds [model.NumAttributes]Range

// ComputeBounds scans the records and returns the range, mean and standard deviation
// of each attribute.
func ComputeBounds(records []model.Record) (Bounds, error) {
	var bounds Bounds
	if len(records) == 0 {
		return bounds, fmt.Errorf("could not compute bounds: %w", ErrEmptyDataset)
	}
	collector := buffer.NewStatsCollector(model.NumAttributes)
	for _, r := range records {
		if err := collector.Push(r.Features[:]...); err != nil {
			return bounds, fmt.Errorf("could not collect stats for record '%s': %w", r.ID, err)
		}
	}
	stats := collector.Stats()
	for _, a := range model.Attributes() {
		bounds[a] = Range{
			Min:   stats[a].Min(),
			Max:   stats[a].Max(),
			Mean:  stats[a].Avg(),
			StDev: stats[a].StDev(),
		}
		if bounds[a].Degenerate() {
			log.Warn().
				Str("attribute", a.String()).
				Float64("value", bounds[a].Min).
				Int("records", stats[a].Count()).
				Msg("attribute has no variance, normalizing to 0")
		}
	}
	log.Debug().
		Int("records", collector.Size()).
		Interface("bounds", bounds).
		Msg("computed bounds")
	return bounds, nil
}

// Degenerate returns the attributes that have no variance.
func (b Bounds) Degenerate() []model.Attribute {
	aa := make([]model.Attribute, 0)
	for i, r := range b {
		if r.Degenerate() {
			aa = append(aa, model.Attribute(i))
		}
	}
	return aa
}

// Scale rescales a single attribute value into the [0,1] range of the bounds.
// Values outside the training range are not clamped.
func (b Bounds) Scale(a model.Attribute, v float64) float64 {
	r := b[a]
	if r.Degenerate() {
		return 0
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// Normalize returns a copy of the record with rescaled features.
func (b Bounds) Normalize(record model.Record) model.Record {
	normalized := record
	for i, v := range record.Features {
		normalized.Features[i] = b.Scale(model.Attribute(i), v)
	}
	return normalized
}

// NormalizeAll normalizes all the given records.
func (b Bounds) NormalizeAll(records []model.Record) []model.Record {
	normalized := make([]model.Record, len(records))
	for i, r := range records {
		normalized[i] = b.Normalize(r)
	}
	return normalized
}
