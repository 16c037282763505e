package math

import (
	"github.com/drakos74/tumor-knn/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the euclidean distance between two feature vectors.
func Euclidean(a, b model.Features) float64 {
	return floats.Distance(a[:], b[:], 2)
}
