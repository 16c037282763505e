package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabel is returned when a label column can not be mapped to a tumor class.
var ErrUnknownLabel = errors.New("unknown label")

// Label defines the tumor class of a sample.
type Label byte

const (
	// NoLabel defines a missing label e.g. for a record awaiting prediction.
	NoLabel Label = iota
	// Benign defines a benign tumor.
	Benign
	// Malignant defines a malignant tumor.
	// It is the positive class for the evaluation.
	Malignant
)

// ParseLabel maps the label column of a row to a Label.
// The match is done on the 'malign' and 'benign' substrings, ignoring case.
func ParseLabel(s string) (Label, error) {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "malign"):
		return Malignant, nil
	case strings.Contains(l, "benign"):
		return Benign, nil
	}
	return NoLabel, fmt.Errorf("could not parse label '%s': %w", s, ErrUnknownLabel)
}

// String returns the lowercase name of the label.
func (l Label) String() string {
	switch l {
	case Benign:
		return "benign"
	case Malignant:
		return "malignant"
	}
	return "none"
}

// Valid returns true if the label is one of the tumor classes.
func (l Label) Valid() bool {
	return l == Benign || l == Malignant
}

// MarshalText encodes the label by name.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes the label from its name.
func (l *Label) UnmarshalText(b []byte) error {
	if string(b) == NoLabel.String() {
		*l = NoLabel
		return nil
	}
	label, err := ParseLabel(string(b))
	if err != nil {
		return err
	}
	*l = label
	return nil
}
