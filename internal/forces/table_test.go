package forces

import (
	"errors"
	"strings"
	"testing"
)

func TestTableValue(t *testing.T) {
	table := NewTable()
	table.SetSample(15, Sample{ShearStart: 120.5, ShearEnd: -80.25, MomentStart: 310, MomentEnd: 475.5})

	v, err := table.Value(15, ComponentMomentEnd)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 475.5 {
		t.Errorf("Value: got %v, want 475.5", v)
	}
}

func TestTableMissingElement(t *testing.T) {
	table := NewTable()
	table.Set(1, ComponentShearStart, 10)

	_, err := table.Value(2, ComponentShearStart)
	if !errors.Is(err, ErrDataMissing) {
		t.Errorf("got %v, want ErrDataMissing", err)
	}
}

func TestTableMissingComponent(t *testing.T) {
	table := NewTable()
	table.Set(1, ComponentShearStart, 10)

	_, err := table.Value(1, ComponentMomentStart)
	if !errors.Is(err, ErrComponentMissing) {
		t.Errorf("got %v, want ErrComponentMissing", err)
	}
}

func TestAccessorForces(t *testing.T) {
	table := NewTable()
	want := Sample{ShearStart: 1, ShearEnd: 2, MomentStart: 3, MomentEnd: 4}
	table.SetSample(42, want)

	got, err := NewAccessor(table).Forces(42)
	if err != nil {
		t.Fatalf("Forces: %v", err)
	}
	if got != want {
		t.Errorf("Forces: got %+v, want %+v", got, want)
	}
}

// A missing element must surface as an error, never as a zero-filled sample.
func TestAccessorNeverZeroFills(t *testing.T) {
	table := NewTable()
	_, err := NewAccessor(table).Forces(9)
	if !errors.Is(err, ErrDataMissing) {
		t.Fatalf("got %v, want ErrDataMissing", err)
	}

	// Partially populated element: present id, absent component.
	table.Set(9, ComponentShearStart, 55)
	_, err = NewAccessor(table).Forces(9)
	if !errors.Is(err, ErrComponentMissing) {
		t.Fatalf("got %v, want ErrComponentMissing", err)
	}
}

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		"Element,Vy_i,Vy_j,Mz_i,Mz_j",
		"15,120.5,-80.25,310.0,475.5",
		"24,-10,20,,5",
		"",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	got, err := NewAccessor(table).Forces(15)
	if err != nil {
		t.Fatalf("Forces(15): %v", err)
	}
	want := Sample{ShearStart: 120.5, ShearEnd: -80.25, MomentStart: 310, MomentEnd: 475.5}
	if got != want {
		t.Errorf("Forces(15): got %+v, want %+v", got, want)
	}

	// The blank Mz_i cell of element 24 stays missing.
	if _, err := table.Value(24, ComponentMomentStart); !errors.Is(err, ErrComponentMissing) {
		t.Errorf("blank cell: got %v, want ErrComponentMissing", err)
	}
}

func TestReadCSVBadHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Id,Vy_i\n1,2\n"))
	if err == nil {
		t.Fatal("want header error")
	}
}
