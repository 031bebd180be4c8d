package girder

import (
	"errors"
	"testing"

	"github.com/emfajardo/gogrillage/internal/forces"
	"github.com/emfajardo/gogrillage/internal/model"
)

func TestCriticalFirstOccurrenceWins(t *testing.T) {
	s := Series{
		{Position: 0, Value: 10},
		{Position: 1, Value: -30},
		{Position: 2, Value: 5},
		{Position: 3, Value: -30},
	}

	e, err := Critical(s)
	if err != nil {
		t.Fatalf("Critical: %v", err)
	}
	if e.Max != 10 || e.MaxPosition != 0 {
		t.Errorf("max: got %v at %v, want 10 at 0", e.Max, e.MaxPosition)
	}
	if e.Min != -30 || e.MinPosition != 1 {
		t.Errorf("min: got %v at %v, want -30 at 1 (first occurrence)", e.Min, e.MinPosition)
	}
}

func TestCriticalSinglePoint(t *testing.T) {
	e, err := Critical(Series{{Position: 2.5, Value: -7}})
	if err != nil {
		t.Fatalf("Critical: %v", err)
	}
	if e.Max != -7 || e.Min != -7 || e.MaxPosition != 2.5 || e.MinPosition != 2.5 {
		t.Errorf("got %+v", e)
	}
}

func TestCriticalEmptyProfile(t *testing.T) {
	if _, err := Critical(nil); !errors.Is(err, ErrEmptyProfile) {
		t.Errorf("got %v, want ErrEmptyProfile", err)
	}
}

// fullTable fills every element of the model with values derived from the
// element id, so the expected extremes are known by construction.
func fullTable(r *model.Registry) *forces.Table {
	table := forces.NewTable()
	for _, id := range r.ElementIDs() {
		v := float64(id)
		table.SetSample(id, forces.Sample{
			ShearStart:  v,
			ShearEnd:    -v / 2,
			MomentStart: 2 * v,
			MomentEnd:   -3 * v,
		})
	}
	return table
}

func TestCriticalElements(t *testing.T) {
	r := model.NewRegistry()
	accessor := forces.NewAccessor(fullTable(r))

	extremes, err := CriticalElements(r, accessor)
	if err != nil {
		t.Fatalf("CriticalElements: %v", err)
	}
	if len(extremes) != len(forces.Components) {
		t.Fatalf("got %d extremes, want %d", len(extremes), len(forces.Components))
	}

	want := map[string]float64{
		forces.ComponentShearStart:  85,
		forces.ComponentShearEnd:    -42.5,
		forces.ComponentMomentStart: 170,
		forces.ComponentMomentEnd:   -255,
	}
	for _, e := range extremes {
		if e.Element != 85 {
			t.Errorf("%s: element %d, want 85", e.Component, e.Element)
		}
		if e.Value != want[e.Component] {
			t.Errorf("%s: value %v, want %v (sign preserved)", e.Component, e.Value, want[e.Component])
		}
	}
}

func TestCriticalElementsMissingData(t *testing.T) {
	r := model.NewRegistry()
	accessor := forces.NewAccessor(forces.NewTable())
	if _, err := CriticalElements(r, accessor); !errors.Is(err, forces.ErrDataMissing) {
		t.Errorf("got %v, want ErrDataMissing", err)
	}
}

func TestTopRankings(t *testing.T) {
	r := model.NewRegistry()
	accessor := forces.NewAccessor(fullTable(r))

	peaks, err := Peaks(r, accessor)
	if err != nil {
		t.Fatalf("Peaks: %v", err)
	}
	if len(peaks) != model.ElementCount {
		t.Fatalf("got %d peaks, want %d", len(peaks), model.ElementCount)
	}

	top := TopByMoment(peaks, 5)
	if len(top) != 5 {
		t.Fatalf("got %d ranked, want 5", len(top))
	}
	for i, want := range []int{85, 84, 83, 82, 81} {
		if top[i].Element != want {
			t.Errorf("moment rank %d: element %d, want %d", i, top[i].Element, want)
		}
	}

	shears := TopByShear(peaks, 3)
	if shears[0].Element != 85 || shears[0].Shear != 85 {
		t.Errorf("shear rank 0: got %+v", shears[0])
	}

	// Ranking must not reorder the caller's slice.
	if peaks[0].Element != 1 {
		t.Errorf("Peaks input mutated: first element %d", peaks[0].Element)
	}
}
