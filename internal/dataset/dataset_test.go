package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drakos74/tumor-knn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	source := strings.Join([]string{
		`"id","a","b"`,
		``,
		`1,1,1,1,1,1,1,1,1,1,benign`,
		`   `,
		`  "a comment"`,
		`2,5,5,5,5,5,5,5,5,5,malign`,
	}, "\n")

	lines, err := ReadLines(strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Number: 3, Text: "1,1,1,1,1,1,1,1,1,1,benign"},
		{Number: 6, Text: "2,5,5,5,5,5,5,5,5,5,malign"},
	}, lines)
}

func TestParseRow(t *testing.T) {

	type test struct {
		row    string
		record model.Record
		err    error
	}

	tests := map[string]test{
		"benign": {
			row: "1000025,5,1,1,1,2,1,3,1,1,benign",
			record: model.Record{
				ID:       "1000025",
				Features: model.Features{5, 1, 1, 1, 2, 1, 3, 1, 1},
				Label:    model.Benign,
			},
		},
		"malign": {
			row: "2,5,5,5,5,5,5,5,5,5,malign",
			record: model.Record{
				ID:       "2",
				Features: model.Features{5, 5, 5, 5, 5, 5, 5, 5, 5},
				Label:    model.Malignant,
			},
		},
		"whitespace-and-case": {
			row: " 3 , 1.5, 2 ,3,4,5,6,7,8,9 , MALIGNANT ",
			record: model.Record{
				ID:       "3",
				Features: model.Features{1.5, 2, 3, 4, 5, 6, 7, 8, 9},
				Label:    model.Malignant,
			},
		},
		"extra-columns": {
			row: "4,1,1,1,1,1,1,1,1,1,Benign,extra",
			record: model.Record{
				ID:       "4",
				Features: model.Features{1, 1, 1, 1, 1, 1, 1, 1, 1},
				Label:    model.Benign,
			},
		},
		"missing-columns": {
			row: "5,1,1,1,1,1,1,1,1,benign",
			err: ErrMalformedRow,
		},
		"not-a-number": {
			row: "6,1,1,1,1,1,?,1,1,1,benign",
			err: ErrMalformedRow,
		},
		"empty-attribute": {
			row: "7,1,1,,1,1,1,1,1,1,benign",
			err: ErrMalformedRow,
		},
		"non-finite": {
			row: "8,1,1,NaN,1,1,1,1,1,1,benign",
			err: ErrMalformedRow,
		},
		"unknown-label": {
			row: "9,1,1,1,1,1,1,1,1,1,unknown",
			err: model.ErrUnknownLabel,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			record, err := ParseRow(tt.row)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.record, record)
		})
	}
}

func TestParse(t *testing.T) {
	records, err := Parse([]Line{
		{Number: 2, Text: "a,1,1,1,1,1,1,1,1,1,benign"},
		{Number: 3, Text: "b,5,5,5,5,5,5,5,5,5,malign"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Index)
	assert.Equal(t, 1, records[1].Index)
	assert.Equal(t, "b", records[1].ID)

	_, err = Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = Parse([]Line{
		{Number: 2, Text: "a,1,1,1,1,1,1,1,1,1,benign"},
		{Number: 7, Text: "b,5,5"},
	})
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 7")
}

func TestLoad(t *testing.T) {
	records, err := Load("testdata/train.csv")
	require.NoError(t, err)
	assert.Len(t, records, 20)
	assert.Equal(t, map[string]int{"benign": 13, "malignant": 7}, Distribution(records))

	records, err = Load("testdata/test.csv")
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("\"id\",\"class\"\n\n"), 0644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	malformed := filepath.Join(dir, "malformed.csv")
	require.NoError(t, os.WriteFile(malformed, []byte("1,1,1,1,1,1,1,1,1,1,benign\n2,x,1,1,1,1,1,1,1,1,benign\n"), 0644))
	_, err = Load(malformed)
	assert.ErrorIs(t, err, ErrMalformedRow)
}
