package ml

import "errors"

var (
	// ErrEmptyDataset is returned when an operation needs at least one record.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInvalidK is returned for a neighbourhood size smaller than 1.
	ErrInvalidK = errors.New("invalid k")
	// ErrNoNeighbours is returned when classifying an empty neighbourhood.
	ErrNoNeighbours = errors.New("no neighbours")
)
