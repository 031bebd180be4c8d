package model

import (
	"errors"
	"testing"
)

func TestRegistryCounts(t *testing.T) {
	r := NewRegistry()

	for id := 1; id <= NodeCount; id++ {
		if _, err := r.Node(id); err != nil {
			t.Errorf("Node(%d): %v", id, err)
		}
	}
	for id := 1; id <= ElementCount; id++ {
		if _, err := r.Element(id); err != nil {
			t.Errorf("Element(%d): %v", id, err)
		}
	}
	if got := len(r.ElementIDs()); got != ElementCount {
		t.Errorf("ElementIDs: got %d, want %d", got, ElementCount)
	}
}

func TestRegistryUnknownIDs(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Node(51); !errors.Is(err, ErrNotFound) {
		t.Errorf("Node(51): got %v, want ErrNotFound", err)
	}
	if _, err := r.Element(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Element(0): got %v, want ErrNotFound", err)
	}
	if _, err := r.Element(86); !errors.Is(err, ErrNotFound) {
		t.Errorf("Element(86): got %v, want ErrNotFound", err)
	}
	if _, err := r.Girder(6); !errors.Is(err, ErrNotFound) {
		t.Errorf("Girder(6): got %v, want ErrNotFound", err)
	}
	if _, err := r.GirderElements(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("GirderElements(0): got %v, want ErrNotFound", err)
	}
}

func TestGirderChains(t *testing.T) {
	r := NewRegistry()

	// Reference chains of the grillage layout.
	wantElements := map[int][]int{
		1: {13, 22, 31, 40, 49, 58, 67, 76, 81},
		2: {14, 23, 32, 41, 50, 59, 68, 77, 82},
		3: {15, 24, 33, 42, 51, 60, 69, 78, 83},
		4: {16, 25, 34, 43, 52, 61, 70, 79, 84},
		5: {17, 26, 35, 44, 53, 62, 71, 80, 85},
	}
	wantNodes := map[int][]int{
		1: {1, 11, 16, 21, 26, 31, 36, 41, 46, 6},
		3: {3, 13, 18, 23, 28, 33, 38, 43, 48, 8},
		5: {5, 15, 20, 25, 30, 35, 40, 45, 50, 10},
	}

	for index, want := range wantElements {
		got, err := r.GirderElements(index)
		if err != nil {
			t.Fatalf("GirderElements(%d): %v", index, err)
		}
		if len(got) != GirderSegments {
			t.Fatalf("girder %d: got %d elements, want %d", index, len(got), GirderSegments)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("girder %d element %d: got %d, want %d", index, i, got[i], want[i])
			}
		}
	}

	for index, want := range wantNodes {
		g, err := r.Girder(index)
		if err != nil {
			t.Fatalf("Girder(%d): %v", index, err)
		}
		for i := range want {
			if g.Nodes[i] != want[i] {
				t.Errorf("girder %d node %d: got %d, want %d", index, i, g.Nodes[i], want[i])
			}
		}
	}
}

func TestGirderChainGeometry(t *testing.T) {
	r := NewRegistry()

	for index := 1; index <= GirderCount; index++ {
		g, err := r.Girder(index)
		if err != nil {
			t.Fatalf("Girder(%d): %v", index, err)
		}

		// Each chain runs the full span with non-decreasing x at a
		// single transverse coordinate.
		prev := -1.0
		z := float64(index-1) * GirderSpacing
		for _, id := range g.Nodes {
			p, err := r.Node(id)
			if err != nil {
				t.Fatalf("Node(%d): %v", id, err)
			}
			if p.X < prev {
				t.Errorf("girder %d node %d: x %.3f decreases from %.3f", index, id, p.X, prev)
			}
			if p.Z != z {
				t.Errorf("girder %d node %d: z %.3f, want %.3f", index, id, p.Z, z)
			}
			prev = p.X
		}

		first, _ := r.Node(g.Nodes[0])
		last, _ := r.Node(g.Nodes[len(g.Nodes)-1])
		if first.X != 0 || last.X != Span {
			t.Errorf("girder %d: span %.3f..%.3f, want 0..%.1f", index, first.X, last.X, Span)
		}

		// Consecutive chain elements share a node.
		for i := 0; i < len(g.Elements)-1; i++ {
			a, _ := r.Element(g.Elements[i])
			b, _ := r.Element(g.Elements[i+1])
			if a.End != b.Start {
				t.Errorf("girder %d: elements %d and %d do not chain (%d != %d)",
					index, g.Elements[i], g.Elements[i+1], a.End, b.Start)
			}
		}
	}
}

func TestElementEndpointsExist(t *testing.T) {
	r := NewRegistry()

	for _, id := range r.ElementIDs() {
		e, err := r.Element(id)
		if err != nil {
			t.Fatalf("Element(%d): %v", id, err)
		}
		if _, err := r.Node(e.Start); err != nil {
			t.Errorf("element %d start: %v", id, err)
		}
		if _, err := r.Node(e.End); err != nil {
			t.Errorf("element %d end: %v", id, err)
		}
	}
}
