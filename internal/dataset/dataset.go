package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/tumor-knn/internal/math/ml"
	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	// NumFields is the number of columns of a row: id, attributes and label.
	NumFields = model.NumAttributes + 2

	separator = ","
	comment   = "\""

	idColumn    = 0
	labelColumn = NumFields - 1
)

var (
	// ErrMalformedRow is returned for rows with missing columns or unparsable attributes.
	ErrMalformedRow = errors.New("malformed row")
	// ErrEmptyDataset is returned if a source has no records.
	ErrEmptyDataset = ml.ErrEmptyDataset
)

// Line is a single data line of a source.
type Line struct {
	// Number is the 1-based line number in the source.
	Number int
	Text   string
}

// ReadLines reads all the data lines of the source.
// Blank lines and lines starting with a quote e.g. headers are skipped.
func ReadLines(r io.Reader) ([]Line, error) {
	lines := make([]Line, 0)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, comment) {
			continue
		}
		lines = append(lines, Line{
			Number: n,
			Text:   text,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read line %d: %w", n+1, err)
	}
	return lines, nil
}

// ParseRow parses a single row into a record.
// The index of the returned record is left to the caller.
func ParseRow(row string) (model.Record, error) {
	var record model.Record
	fields := strings.Split(row, separator)
	if len(fields) < NumFields {
		return record, fmt.Errorf("expected %d fields but found %d: %w", NumFields, len(fields), ErrMalformedRow)
	}
	record.ID = strings.TrimSpace(fields[idColumn])
	for i := 0; i < model.NumAttributes; i++ {
		field := strings.TrimSpace(fields[i+1])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return record, fmt.Errorf("could not parse %s '%s': %w", model.Attribute(i), field, ErrMalformedRow)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return record, fmt.Errorf("non-finite %s '%s': %w", model.Attribute(i), field, ErrMalformedRow)
		}
		record.Features[i] = v
	}
	label, err := model.ParseLabel(strings.TrimSpace(fields[labelColumn]))
	if err != nil {
		return record, err
	}
	record.Label = label
	return record, nil
}

// Parse parses all the lines into records, indexed in source order.
// Any invalid line fails the whole parse.
func Parse(lines []Line) ([]model.Record, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyDataset
	}
	records := make([]model.Record, len(lines))
	for i, line := range lines {
		record, err := ParseRow(line.Text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.Number, err)
		}
		record.Index = i
		records[i] = record
	}
	return records, nil
}

// Load reads and parses the dataset file at the given path.
func Load(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset '%s': %w", path, err)
	}

	records, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("could not parse dataset '%s': %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("records", len(records)).
		Interface("labels", Distribution(records)).
		Msg("loaded dataset")
	return records, nil
}

// Distribution counts the records per label.
func Distribution(records []model.Record) map[string]int {
	d := make(map[string]int)
	for _, r := range records {
		d[r.Label.String()]++
	}
	return d
}
