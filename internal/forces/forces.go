// Package forces reads per-element force records out of the analysis
// dataset: a table indexed by element id and component label, four
// components per element (Vy_i, Vy_j, Mz_i, Mz_j).
package forces

import "errors"

// Component labels as they appear in the dataset. i is the element start
// end, j the element end.
const (
	ComponentShearStart  = "Vy_i"
	ComponentShearEnd    = "Vy_j"
	ComponentMomentStart = "Mz_i"
	ComponentMomentEnd   = "Mz_j"
)

// Components lists the four expected labels in dataset order.
var Components = []string{
	ComponentShearStart,
	ComponentShearEnd,
	ComponentMomentStart,
	ComponentMomentEnd,
}

var (
	// ErrDataMissing reports an element id absent from the dataset.
	ErrDataMissing = errors.New("element missing from dataset")

	// ErrComponentMissing reports a component label absent for an element
	// that is otherwise present.
	ErrComponentMissing = errors.New("component missing from dataset")
)

// Dataset is the upstream collaborator: a labeled table that resolves one
// scalar per (element id, component label) pair. Implementations must
// distinguish a missing element (ErrDataMissing) from a missing component
// (ErrComponentMissing).
type Dataset interface {
	Value(elementID int, component string) (float64, error)
}

// Sample holds the four raw force values of one element: shear (kN) and
// bending moment (kN-m) at each end.
type Sample struct {
	ShearStart  float64 // Vy_i
	ShearEnd    float64 // Vy_j
	MomentStart float64 // Mz_i
	MomentEnd   float64 // Mz_j
}

// Accessor translates the dataset's label-indexed shape into Sample records.
type Accessor struct {
	dataset Dataset
}

// NewAccessor wraps a dataset.
func NewAccessor(dataset Dataset) *Accessor {
	return &Accessor{dataset: dataset}
}

// Forces returns the four force values of an element. It never substitutes
// zeroes: any missing label surfaces as an error naming the element.
func (a *Accessor) Forces(elementID int) (Sample, error) {
	var s Sample
	for _, c := range Components {
		v, err := a.dataset.Value(elementID, c)
		if err != nil {
			return Sample{}, err
		}
		switch c {
		case ComponentShearStart:
			s.ShearStart = v
		case ComponentShearEnd:
			s.ShearEnd = v
		case ComponentMomentStart:
			s.MomentStart = v
		case ComponentMomentEnd:
			s.MomentEnd = v
		}
	}
	return s, nil
}
