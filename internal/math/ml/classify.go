package ml

import (
	"fmt"

	"github.com/drakos74/tumor-knn/internal/model"
)

// Vote is the label count of a neighbourhood.
type Vote struct {
	Benign    int `json:"benign"`
	Malignant int `json:"malignant"`
}

// Count counts the labels of the given neighbours.
func Count(neighbours []Neighbour) Vote {
	var v Vote
	for _, n := range neighbours {
		switch n.Record.Label {
		case model.Benign:
			v.Benign++
		case model.Malignant:
			v.Malignant++
		}
	}
	return v
}

// Label returns the majority label.
// A tie resolves to Malignant, flagging the sample under ambiguity.
func (v Vote) Label() model.Label {
	if v.Benign > v.Malignant {
		return model.Benign
	}
	return model.Malignant
}

// Classify predicts the label of a record from its neighbours by majority vote.
func Classify(neighbours []Neighbour) (model.Label, error) {
	if len(neighbours) == 0 {
		return model.NoLabel, fmt.Errorf("could not classify: %w", ErrNoNeighbours)
	}
	return Count(neighbours).Label(), nil
}
