package storage

import (
	"errors"
	"fmt"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// Key is the storage key of an evaluation artifact.
type Key struct {
	Label string `json:"label"`
	K     int    `json:"k"`
}

// Path returns the file friendly representation of the key.
// The k suffix is left out for artifacts that do not depend on k.
func (k Key) Path() string {
	if k.K > 0 {
		return fmt.Sprintf("%s_k%d", k.Label, k.K)
	}
	return k.Label
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
