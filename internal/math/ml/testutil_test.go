package ml

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/tumor-knn/internal/model"
)

func uniform(v float64) model.Features {
	var f model.Features
	for i := range f {
		f[i] = v
	}
	return f
}

func newRecord(index int, id string, v float64, label model.Label) model.Record {
	return model.Record{
		ID:       id,
		Index:    index,
		Features: uniform(v),
		Label:    label,
	}
}

// randomRecords generates records with integer attributes in [1,10], as in the source data.
func randomRecords(r *rand.Rand, n int) []model.Record {
	records := make([]model.Record, n)
	for i := range records {
		var f model.Features
		for j := range f {
			f[j] = float64(1 + r.Intn(10))
		}
		label := model.Benign
		if r.Intn(2) == 0 {
			label = model.Malignant
		}
		records[i] = model.Record{
			ID:       fmt.Sprintf("r%d", i),
			Index:    i,
			Features: f,
			Label:    label,
		}
	}
	return records
}
