package forces

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Table is an in-memory Dataset: element id -> component label -> value.
type Table struct {
	records map[int]map[string]float64
}

// NewTable creates an empty force table.
func NewTable() *Table {
	return &Table{records: make(map[int]map[string]float64)}
}

// Set stores one scalar for an (element, component) pair.
func (t *Table) Set(elementID int, component string, value float64) {
	row, ok := t.records[elementID]
	if !ok {
		row = make(map[string]float64, len(Components))
		t.records[elementID] = row
	}
	row[component] = value
}

// SetSample stores all four components of an element at once.
func (t *Table) SetSample(elementID int, s Sample) {
	t.Set(elementID, ComponentShearStart, s.ShearStart)
	t.Set(elementID, ComponentShearEnd, s.ShearEnd)
	t.Set(elementID, ComponentMomentStart, s.MomentStart)
	t.Set(elementID, ComponentMomentEnd, s.MomentEnd)
}

// Value implements Dataset.
func (t *Table) Value(elementID int, component string) (float64, error) {
	row, ok := t.records[elementID]
	if !ok {
		return 0, fmt.Errorf("%w: element %d", ErrDataMissing, elementID)
	}
	v, ok := row[component]
	if !ok {
		return 0, fmt.Errorf("%w: element %d component %q", ErrComponentMissing, elementID, component)
	}
	return v, nil
}

// ElementIDs returns the ids present in the table, ascending.
func (t *Table) ElementIDs() []int {
	ids := make([]int, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LoadCSV reads a force table from a CSV file with an Element id column
// followed by one column per component label, matching the layout of the
// forces_complete.csv export.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses the CSV force-table layout from a reader.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("force table header: %w", err)
	}
	if len(header) < 2 || header[0] != "Element" {
		return nil, fmt.Errorf("force table header: want leading Element column, got %v", header)
	}

	t := NewTable()
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("force table line %d: %w", line, err)
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("force table line %d: element id %q: %w", line, rec[0], err)
		}
		for col := 1; col < len(rec) && col < len(header); col++ {
			if rec[col] == "" {
				continue
			}
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				return nil, fmt.Errorf("force table line %d: %s: %w", line, header[col], err)
			}
			t.Set(id, header[col], v)
		}
	}
	return t, nil
}
