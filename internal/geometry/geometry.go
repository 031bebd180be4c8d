// Package geometry builds the 3D polyline geometry behind the extruded
// force-diagram views: girder baselines, force profiles raised above them,
// and the vertical connector hatching in between.
package geometry

import (
	"errors"
	"fmt"

	"github.com/emfajardo/gogrillage/internal/girder"
	"github.com/emfajardo/gogrillage/internal/model"
)

var (
	// ErrInvalidScale reports a non-positive extrusion scale factor, which
	// would flatten or invert the diagram.
	ErrInvalidScale = errors.New("scale factor must be positive")

	// ErrUnsupportedKind reports a force kind other than shear or moment.
	ErrUnsupportedKind = errors.New("unsupported force kind")
)

// ForceKind selects which series of a profile drives the extrusion.
type ForceKind int

const (
	Shear ForceKind = iota
	Moment
)

func (k ForceKind) String() string {
	switch k {
	case Shear:
		return "shear"
	case Moment:
		return "moment"
	}
	return fmt.Sprintf("ForceKind(%d)", int(k))
}

// ParseKind maps a user-facing kind name to a ForceKind.
func ParseKind(name string) (ForceKind, error) {
	switch name {
	case "shear", "sfd":
		return Shear, nil
	case "moment", "bmd":
		return Moment, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

// Point3 is a point in model space: X longitudinal, Y vertical, Z transverse.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Polyline is an open run of connected points.
type Polyline []Point3

// Segment is a two-point line.
type Segment [2]Point3

// Extrusion is the renderable 3D geometry of one girder's force diagram.
type Extrusion struct {
	Girder     int       `json:"girder"`
	Color      string    `json:"color"`
	Baseline   Polyline  `json:"baseline"`
	Profile    Polyline  `json:"profile"`
	Connectors []Segment `json:"connectors"`
}

// Builder derives extrusion geometry from girder profiles. The baseline sits
// at the deck level of the model.
type Builder struct {
	registry *model.Registry
	baseline float64
}

// NewBuilder creates a builder over the model registry.
func NewBuilder(registry *model.Registry) *Builder {
	return &Builder{registry: registry, baseline: model.DeckHeight}
}

// Build extrudes the selected force series of every supplied profile. Each
// girder gets a baseline polyline at deck level, a force polyline offset
// vertically by scale times the force value, and one connector segment per
// sampled position. Girders differ only in transverse coordinate and color;
// the longitudinal and force-derived values come entirely from the profile.
func (b *Builder) Build(profiles map[int]girder.Profile, scale float64, kind ForceKind) (map[int]Extrusion, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	if kind != Shear && kind != Moment {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
	}

	out := make(map[int]Extrusion, len(profiles))
	for index, profile := range profiles {
		g, err := b.registry.Girder(index)
		if err != nil {
			return nil, err
		}
		start, err := b.registry.Node(g.Nodes[0])
		if err != nil {
			return nil, err
		}

		series := profile.Shear
		if kind == Moment {
			series = profile.Moment
		}

		e := Extrusion{
			Girder:     index,
			Color:      g.Color,
			Baseline:   make(Polyline, len(series)),
			Profile:    make(Polyline, len(series)),
			Connectors: make([]Segment, len(series)),
		}
		z := start.Z
		for i, p := range series {
			base := Point3{X: p.Position, Y: b.baseline, Z: z}
			lift := Point3{X: p.Position, Y: b.baseline + scale*p.Value, Z: z}
			e.Baseline[i] = base
			e.Profile[i] = lift
			e.Connectors[i] = Segment{base, lift}
		}
		out[index] = e
	}
	return out, nil
}

// Frame returns the wireframe of the whole grillage, one segment per
// element, for drawing the bridge behind the extruded diagrams.
func (b *Builder) Frame() ([]Segment, error) {
	ids := b.registry.ElementIDs()
	segments := make([]Segment, 0, len(ids))
	for _, id := range ids {
		el, err := b.registry.Element(id)
		if err != nil {
			return nil, err
		}
		start, err := b.registry.Node(el.Start)
		if err != nil {
			return nil, err
		}
		end, err := b.registry.Node(el.End)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{
			{X: start.X, Y: start.Y, Z: start.Z},
			{X: end.X, Y: end.Y, Z: end.Z},
		})
	}
	return segments, nil
}

// Densify interpolates extra connector segments between the sampled
// positions of an extrusion, density per span, for the hatched fill look.
// Endpoints repeat between spans exactly as the sampled connectors do.
func Densify(e Extrusion, density int) []Segment {
	if len(e.Profile) < 2 || density < 1 {
		return nil
	}
	steps := density + 1
	hatch := make([]Segment, 0, (len(e.Profile)-1)*(steps+1))
	for i := 0; i < len(e.Profile)-1; i++ {
		b0, b1 := e.Baseline[i], e.Baseline[i+1]
		p0, p1 := e.Profile[i], e.Profile[i+1]
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			base := Point3{
				X: b0.X + t*(b1.X-b0.X),
				Y: b0.Y + t*(b1.Y-b0.Y),
				Z: b0.Z + t*(b1.Z-b0.Z),
			}
			lift := Point3{
				X: p0.X + t*(p1.X-p0.X),
				Y: p0.Y + t*(p1.Y-p0.Y),
				Z: p0.Z + t*(p1.Z-p0.Z),
			}
			hatch = append(hatch, Segment{base, lift})
		}
	}
	return hatch
}
