package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/drakos74/tumor-knn/internal/storage"
	"github.com/drakos74/tumor-knn/internal/storage/file"
)

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) error {
	p := filepath.Join(filePath, fileName)

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not save key '%+v': %w", p, err)
	}

	return file.WriteAtomic(p, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {

	p := filepath.Join(filePath, fileName)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal key '%s': %w", err, storage.CouldNotLoadErr)
	}

	return nil
}

// BlobStorage stores every key as a json file under its directory.
type BlobStorage struct {
	dir string
}

// NewJsonBlob creates a new json file storage under the given directory.
func NewJsonBlob(dir string) *BlobStorage {
	return &BlobStorage{dir: dir}
}

// BlobShard creates a shard of json file storages, one sub-directory per shard.
func BlobShard(dir string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		p := filepath.Join(dir, shard)
		if err := file.MakeDir(p); err != nil {
			return nil, err
		}
		return NewJsonBlob(p), nil
	}
}

func (s *BlobStorage) Store(k storage.Key, value interface{}) error {
	return Save(s.dir, fileName(k), value)
}

func (s *BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir, fileName(k), value)
}

func fileName(k storage.Key) string {
	return fmt.Sprintf("%s.json", k.Path())
}
