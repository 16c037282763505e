package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/drakos74/tumor-knn/internal/storage/file"
)

// Placeholder is substituted by k in an output path template.
const Placeholder = "{k}"

// OutputPath resolves the output path template for the given k.
// The template can carry the Placeholder or a single %d verb,
// otherwise k is appended to the file name before its extension.
func OutputPath(template string, k int) string {
	switch {
	case strings.Contains(template, Placeholder):
		return strings.ReplaceAll(template, Placeholder, strconv.Itoa(k))
	case strings.Contains(template, "%d"):
		return fmt.Sprintf(template, k)
	}
	ext := filepath.Ext(template)
	return fmt.Sprintf("%s%d%s", strings.TrimSuffix(template, ext), k, ext)
}

// WritePredictions writes one '<id>, <label>' line per prediction.
func WritePredictions(w io.Writer, predictions []model.Prediction) error {
	for _, p := range predictions {
		if _, err := fmt.Fprintf(w, "%s, %s\n", p.ID, p.Predicted); err != nil {
			return err
		}
	}
	return nil
}

// SavePredictions writes the predictions file at the given path.
// The file is only put in place once fully written.
func SavePredictions(path string, predictions []model.Prediction) error {
	return file.WriteAtomic(path, func(w io.Writer) error {
		return WritePredictions(w, predictions)
	})
}
