package model

// NumAttributes is the size of the feature vector.
const NumAttributes = 9

// Attribute is the index of a feature in the feature vector.
type Attribute int

const (
	ClumpThickness Attribute = iota
	CellSize
	CellShape
	MarginalAdhesion
	EpithelialCellSize
	BareNuclei
	BlandChromatin
	NormalNucleoli
	Mitoses
)

var attributeNames = [NumAttributes]string{
	"clump_thickness",
	"cell_size",
	"cell_shape",
	"marginal_adhesion",
	"epithelial_cell_size",
	"bare_nuclei",
	"bland_chromatin",
	"normal_nucleoli",
	"mitoses",
}

// String returns the snake case name of the attribute.
func (a Attribute) String() string {
	if a < 0 || int(a) >= NumAttributes {
		return "unknown"
	}
	return attributeNames[a]
}

// Attributes returns all the attributes in column order.
func Attributes() []Attribute {
	aa := make([]Attribute, NumAttributes)
	for i := range aa {
		aa[i] = Attribute(i)
	}
	return aa
}

// Features is the fixed size feature vector of a sample.
type Features [NumAttributes]float64

// Record is a single sample of a dataset.
type Record struct {
	ID string `json:"id"`
	// Index is the position of the record in its dataset.
	// It is used to order equidistant neighbours.
	Index    int      `json:"index"`
	Features Features `json:"features"`
	// Label is the true class as read from the source.
	Label Label `json:"label"`
}

// Prediction is the outcome of classifying a single record.
type Prediction struct {
	ID        string `json:"id"`
	Actual    Label  `json:"actual"`
	Predicted Label  `json:"predicted"`
}

// Correct returns true if the predicted label matches the actual one.
func (p Prediction) Correct() bool {
	return p.Actual == p.Predicted
}
