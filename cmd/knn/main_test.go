package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/tumor-knn/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../internal/dataset/testdata"

func execute(args ...string) (string, error) {
	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	report, err := execute(
		"--train", filepath.Join(testdata, "train.csv"),
		"--test", filepath.Join(testdata, "test.csv"),
		"--output", filepath.Join(dir, "predictions_{k}.csv"),
		"--k", "1,3",
		"--log-level", "warn",
	)
	require.NoError(t, err)
	assert.Contains(t, report, "Computing for k=1")
	assert.Contains(t, report, "Computing for k=3")

	for _, name := range []string{"predictions_1.csv", "predictions_3.csv"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Len(t, bytes.Split(bytes.TrimSpace(b), []byte("\n")), 10)
	}
}

func TestCommand_Errors(t *testing.T) {

	type test struct {
		args []string
		err  error
	}

	tests := map[string]test{
		"missing-test": {
			args: []string{"--train", filepath.Join(testdata, "train.csv")},
			err:  config.ErrInvalidConfig,
		},
		"invalid-k": {
			args: []string{
				"--train", filepath.Join(testdata, "train.csv"),
				"--test", filepath.Join(testdata, "test.csv"),
				"--k", "0",
			},
			err: config.ErrInvalidConfig,
		},
		"missing-file": {
			args: []string{
				"--train", filepath.Join(testdata, "train.csv"),
				"--test", filepath.Join(testdata, "missing.csv"),
			},
			err: os.ErrNotExist,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(tt.args...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(
		"--train", filepath.Join(testdata, "train.csv"),
		"--test", filepath.Join(testdata, "test.csv"),
		"--log-level", "loud",
	)
	assert.Error(t, err)
}
