package ml

import (
	"fmt"
	"sort"

	knnmath "github.com/drakos74/tumor-knn/internal/math"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/rs/zerolog/log"
)

// Neighbour is a reference record with its distance to a query.
type Neighbour struct {
	Record   model.Record `json:"record"`
	Distance float64      `json:"distance"`
}

// Nearest returns the k records of the reference set closest to the query.
// Equidistant records are ordered by their index in the reference set,
// so no candidate is lost and the result is deterministic.
// If k exceeds the size of the reference set, the whole set is returned.
func Nearest(query model.Record, reference []model.Record, k int) ([]Neighbour, error) {
	if k < 1 {
		return nil, fmt.Errorf("could not search neighbourhood of size %d: %w", k, ErrInvalidK)
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("could not search neighbours of '%s': %w", query.ID, ErrEmptyDataset)
	}

	neighbours := make([]Neighbour, len(reference))
	for i, r := range reference {
		neighbours[i] = Neighbour{
			Record:   r,
			Distance: knnmath.Euclidean(query.Features, r.Features),
		}
	}

	sort.SliceStable(neighbours, func(i, j int) bool {
		if neighbours[i].Distance != neighbours[j].Distance {
			return neighbours[i].Distance < neighbours[j].Distance
		}
		return neighbours[i].Record.Index < neighbours[j].Record.Index
	})

	if k > len(neighbours) {
		log.Debug().
			Str("query", query.ID).
			Int("k", k).
			Int("reference", len(neighbours)).
			Msg("k exceeds reference set, using all records")
		return neighbours, nil
	}
	return neighbours[:k], nil
}
