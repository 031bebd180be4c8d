// Package girder turns per-element force records into ordered longitudinal
// force profiles along each girder of the grillage.
package girder

import (
	"errors"
	"fmt"

	"github.com/emfajardo/gogrillage/internal/forces"
	"github.com/emfajardo/gogrillage/internal/model"
)

// ErrEmptyProfile reports an analysis over a profile with no samples.
var ErrEmptyProfile = errors.New("empty profile")

// Point is one sample of a force profile: longitudinal position (m) against
// force (kN) or moment (kN-m) value.
type Point struct {
	Position float64
	Value    float64
}

// Series is an ordered run of profile points, non-decreasing in position.
type Series []Point

// Positions returns the position coordinates of the series.
func (s Series) Positions() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Position
	}
	return out
}

// Values returns the value coordinates of the series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Profile holds the shear and moment series extracted along one girder. The
// two series share positions but are kept separate because coalescing at
// shared nodes is decided per force kind.
type Profile struct {
	Girder int
	Shear  Series
	Moment Series
}

// Model is the registry surface the extractor needs: chain, connectivity and
// coordinate lookups. *model.Registry satisfies it.
type Model interface {
	GirderElements(index int) ([]int, error)
	Element(id int) (model.Element, error)
	Node(id int) (model.Point, error)
}

// Extractor walks girder chains and assembles profiles from the model
// registry and the force dataset.
type Extractor struct {
	registry Model
	accessor *forces.Accessor
}

// NewExtractor creates an extractor over a registry and a force accessor.
func NewExtractor(registry Model, accessor *forces.Accessor) *Extractor {
	return &Extractor{registry: registry, accessor: accessor}
}

// Extract walks the girder's element chain in order and produces its shear
// and moment profiles.
//
// Element endpoints are ordered by computed longitudinal position, not by
// the declared (start, end) pair, because declaration order is not
// guaranteed to follow the chain direction. Where consecutive elements meet
// at a shared node, the duplicate point is dropped only if position and
// value both repeat exactly; a disagreeing value is kept as a second point
// at the same position, because that jump is the real free-body
// discontinuity and must not be smoothed away.
func (e *Extractor) Extract(index int) (Profile, error) {
	elems, err := e.registry.GirderElements(index)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Girder: index,
		Shear:  make(Series, 0, 2*len(elems)),
		Moment: make(Series, 0, 2*len(elems)),
	}

	for _, id := range elems {
		el, err := e.registry.Element(id)
		if err != nil {
			return Profile{}, err
		}
		start, err := e.registry.Node(el.Start)
		if err != nil {
			return Profile{}, err
		}
		end, err := e.registry.Node(el.End)
		if err != nil {
			return Profile{}, err
		}
		sample, err := e.accessor.Forces(id)
		if err != nil {
			return Profile{}, err
		}

		x0, x1 := start.X, end.X
		shear0, shear1 := sample.ShearStart, sample.ShearEnd
		moment0, moment1 := sample.MomentStart, sample.MomentEnd
		if x1 < x0 {
			x0, x1 = x1, x0
			shear0, shear1 = shear1, shear0
			moment0, moment1 = moment1, moment0
		}

		p.Shear = appendSpan(p.Shear, x0, shear0, x1, shear1)
		p.Moment = appendSpan(p.Moment, x0, moment0, x1, moment1)
	}

	return p, nil
}

// ExtractAll extracts every girder's profile, keyed by girder index.
func (e *Extractor) ExtractAll() (map[int]Profile, error) {
	profiles := make(map[int]Profile, model.GirderCount)
	for g := 1; g <= model.GirderCount; g++ {
		p, err := e.Extract(g)
		if err != nil {
			return nil, fmt.Errorf("girder %d: %w", g, err)
		}
		profiles[g] = p
	}
	return profiles, nil
}

// appendSpan appends one element's endpoint pair, coalescing the start point
// with the previous element's end point when both position and value agree.
func appendSpan(s Series, x0, v0, x1, v1 float64) Series {
	if n := len(s); n == 0 || s[n-1].Position != x0 || s[n-1].Value != v0 {
		s = append(s, Point{Position: x0, Value: v0})
	}
	return append(s, Point{Position: x1, Value: v1})
}
