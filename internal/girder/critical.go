package girder

import (
	"math"
	"sort"

	"github.com/emfajardo/gogrillage/internal/forces"
	"github.com/emfajardo/gogrillage/internal/model"
)

// Extremes holds the critical values of one profile series and where along
// the girder they occur.
type Extremes struct {
	Max         float64
	MaxPosition float64
	Min         float64
	MinPosition float64
}

// Critical scans a series for its extreme values. Ties go to the first
// occurrence, which is the lowest position since series are ordered.
func Critical(s Series) (Extremes, error) {
	if len(s) == 0 {
		return Extremes{}, ErrEmptyProfile
	}
	e := Extremes{
		Max:         s[0].Value,
		MaxPosition: s[0].Position,
		Min:         s[0].Value,
		MinPosition: s[0].Position,
	}
	for _, p := range s[1:] {
		if p.Value > e.Max {
			e.Max = p.Value
			e.MaxPosition = p.Position
		}
		if p.Value < e.Min {
			e.Min = p.Value
			e.MinPosition = p.Position
		}
	}
	return e, nil
}

// ComponentExtreme names the element carrying the largest-magnitude value of
// one force component across the whole model.
type ComponentExtreme struct {
	Component string
	Element   int
	Value     float64
}

// ElementPeak is the per-element magnitude summary used for ranking.
type ElementPeak struct {
	Element int
	Shear   float64 // max |Vy_i|, |Vy_j|
	Moment  float64 // max |Mz_i|, |Mz_j|
}

// CriticalElements scans every element of the model for the
// largest-magnitude value of each force component. The sign of the reported
// value is preserved; only the ranking is by magnitude.
func CriticalElements(registry *model.Registry, accessor *forces.Accessor) ([]ComponentExtreme, error) {
	out := make([]ComponentExtreme, len(forces.Components))
	for i, c := range forces.Components {
		out[i] = ComponentExtreme{Component: c}
	}

	for _, id := range registry.ElementIDs() {
		sample, err := accessor.Forces(id)
		if err != nil {
			return nil, err
		}
		values := []float64{sample.ShearStart, sample.ShearEnd, sample.MomentStart, sample.MomentEnd}
		for i, v := range values {
			if out[i].Element == 0 || math.Abs(v) > math.Abs(out[i].Value) {
				out[i].Element = id
				out[i].Value = v
			}
		}
	}
	return out, nil
}

// Peaks summarises every element by its absolute shear and moment maxima.
func Peaks(registry *model.Registry, accessor *forces.Accessor) ([]ElementPeak, error) {
	ids := registry.ElementIDs()
	peaks := make([]ElementPeak, 0, len(ids))
	for _, id := range ids {
		sample, err := accessor.Forces(id)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, ElementPeak{
			Element: id,
			Shear:   math.Max(math.Abs(sample.ShearStart), math.Abs(sample.ShearEnd)),
			Moment:  math.Max(math.Abs(sample.MomentStart), math.Abs(sample.MomentEnd)),
		})
	}
	return peaks, nil
}

// TopByMoment returns the n elements with the largest absolute moment,
// highest first. Input order is preserved between equals.
func TopByMoment(peaks []ElementPeak, n int) []ElementPeak {
	return top(peaks, n, func(p ElementPeak) float64 { return p.Moment })
}

// TopByShear returns the n elements with the largest absolute shear.
func TopByShear(peaks []ElementPeak, n int) []ElementPeak {
	return top(peaks, n, func(p ElementPeak) float64 { return p.Shear })
}

func top(peaks []ElementPeak, n int, key func(ElementPeak) float64) []ElementPeak {
	sorted := make([]ElementPeak, len(peaks))
	copy(sorted, peaks)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
