package model

import (
	"fmt"
	"sort"
)

// Fixed grillage dimensions. The deck is a 25 m span carried by five
// longitudinal girders at 2.5 m transverse spacing, cross-braced at ten
// stations (the two ends plus eight interior stations).
const (
	Span           = 25.0 // m, longitudinal
	GirderSpacing  = 2.5  // m, transverse
	DeckHeight     = 0.0  // m, vertical level of the deck nodes
	NodeCount      = 50
	ElementCount   = 85
	GirderCount    = 5
	GirderSegments = 9 // longitudinal elements per girder
)

// Point is a node coordinate: X longitudinal, Y vertical, Z transverse.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Element is an ordered node pair. The declared order is the modelling
// order, not necessarily the chain-walking order along a girder.
type Element struct {
	Start int
	End   int
}

// Girder is one longitudinal chain of the grillage: nine elements joining
// ten nodes end to end, with a stable index (3 is the central girder) and a
// default display color.
type Girder struct {
	Index    int
	Color    string
	Elements []int
	Nodes    []int
}

// Registry is the static model description: 50 nodes, 85 elements and 5
// girders. It is built once and never mutated, so concurrent lookups are
// safe.
type Registry struct {
	nodes    map[int]Point
	elements map[int]Element
	girders  map[int]Girder
}

var girderColors = [GirderCount]string{"red", "orange", "green", "blue", "purple"}

// NewRegistry builds the fixed grillage model.
//
// Node numbering: nodes 1-5 sit at x=0 (one per girder line), nodes 6-10 at
// x=25, and nodes 11-50 fill the eight interior stations five at a time, so
// girder g runs through g, 10+g, 15+g, ..., 45+g, 5+g.
//
// Element numbering: each cross-brace station contributes four transverse
// elements and each girder nine longitudinal ones. Ids 1-4 brace the x=0
// nodes, 5-8 the x=25 nodes, and from 9 on the interior stations alternate
// with the longitudinal groups, which puts girder g's chain at
// 12+g, 21+g, 30+g, ..., 75+g, 80+g.
func NewRegistry() *Registry {
	r := &Registry{
		nodes:    make(map[int]Point, NodeCount),
		elements: make(map[int]Element, ElementCount),
		girders:  make(map[int]Girder, GirderCount),
	}

	// Nodes.
	for g := 1; g <= GirderCount; g++ {
		z := float64(g-1) * GirderSpacing
		r.nodes[g] = Point{X: 0, Y: DeckHeight, Z: z}
		r.nodes[5+g] = Point{X: Span, Y: DeckHeight, Z: z}
		for s := 1; s <= GirderSegments-1; s++ {
			x := Span * float64(s) / float64(GirderSegments)
			r.nodes[10+5*(s-1)+g] = Point{X: x, Y: DeckHeight, Z: z}
		}
	}

	// Transverse bracing: four elements per station, joining the five
	// nodes of the station in girder order.
	brace := func(firstID, firstNode int) {
		for k := 0; k < GirderCount-1; k++ {
			r.elements[firstID+k] = Element{Start: firstNode + k, End: firstNode + k + 1}
		}
	}
	brace(1, 1) // x = 0
	brace(5, 6) // x = 25
	for s := 1; s <= GirderSegments-1; s++ {
		brace(9+9*(s-1), 11+5*(s-1))
	}

	// Longitudinal girder chains.
	for g := 1; g <= GirderCount; g++ {
		nodes := make([]int, 0, GirderSegments+1)
		nodes = append(nodes, g)
		for s := 1; s <= GirderSegments-1; s++ {
			nodes = append(nodes, 10+5*(s-1)+g)
		}
		nodes = append(nodes, 5+g)

		elems := make([]int, 0, GirderSegments)
		for s := 0; s < GirderSegments-1; s++ {
			id := 12 + 9*s + g
			elems = append(elems, id)
			r.elements[id] = Element{Start: nodes[s], End: nodes[s+1]}
		}
		last := 80 + g
		elems = append(elems, last)
		r.elements[last] = Element{Start: nodes[GirderSegments-1], End: nodes[GirderSegments]}

		r.girders[g] = Girder{
			Index:    g,
			Color:    girderColors[g-1],
			Elements: elems,
			Nodes:    nodes,
		}
	}

	return r
}

// Node returns the coordinate of a node id.
func (r *Registry) Node(id int) (Point, error) {
	p, ok := r.nodes[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: node %d", ErrNotFound, id)
	}
	return p, nil
}

// Element returns the ordered node pair of an element id.
func (r *Registry) Element(id int) (Element, error) {
	e, ok := r.elements[id]
	if !ok {
		return Element{}, fmt.Errorf("%w: element %d", ErrNotFound, id)
	}
	return e, nil
}

// Girder returns the full girder record for an index in 1..5.
func (r *Registry) Girder(index int) (Girder, error) {
	g, ok := r.girders[index]
	if !ok {
		return Girder{}, fmt.Errorf("%w: girder %d", ErrNotFound, index)
	}
	return g, nil
}

// GirderElements returns the ordered element chain of a girder.
func (r *Registry) GirderElements(index int) ([]int, error) {
	g, err := r.Girder(index)
	if err != nil {
		return nil, err
	}
	return g.Elements, nil
}

// ElementIDs returns every element id in ascending order.
func (r *Registry) ElementIDs() []int {
	ids := make([]int, 0, len(r.elements))
	for id := range r.elements {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
