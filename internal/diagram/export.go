package diagram

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/emfajardo/gogrillage/internal/geometry"
	"github.com/emfajardo/gogrillage/internal/girder"
)

// WriteProfileCSV exports a girder profile as rows of
// (position, shear, moment). The two series usually share positions; where a
// free-body jump duplicated a point in one series only, the other column is
// left blank for that row rather than repeating a value that was never
// sampled there.
func WriteProfileCSV(profile girder.Profile, filename string) error {
	f, err := createFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Position", "Vy", "Mz"}); err != nil {
		return err
	}

	shear, moment := profile.Shear, profile.Moment
	i, j := 0, 0
	for i < len(shear) || j < len(moment) {
		switch {
		case j >= len(moment) || (i < len(shear) && shear[i].Position < moment[j].Position):
			w.Write([]string{formatFloat(shear[i].Position), formatFloat(shear[i].Value), ""})
			i++
		case i >= len(shear) || moment[j].Position < shear[i].Position:
			w.Write([]string{formatFloat(moment[j].Position), "", formatFloat(moment[j].Value)})
			j++
		default:
			w.Write([]string{formatFloat(shear[i].Position), formatFloat(shear[i].Value), formatFloat(moment[j].Value)})
			i++
			j++
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCriticalCSV exports the per-component critical elements.
func WriteCriticalCSV(extremes []girder.ComponentExtreme, filename string) error {
	f, err := createFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Component", "Element", "Value"}); err != nil {
		return err
	}
	for _, e := range extremes {
		w.Write([]string{e.Component, strconv.Itoa(e.Element), formatFloat(e.Value)})
	}
	w.Flush()
	return w.Error()
}

// WritePeaksCSV exports ranked element peaks.
func WritePeaksCSV(peaks []girder.ElementPeak, filename string) error {
	f, err := createFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Element", "MaxShear", "MaxMoment"}); err != nil {
		return err
	}
	for _, p := range peaks {
		w.Write([]string{strconv.Itoa(p.Element), formatFloat(p.Shear), formatFloat(p.Moment)})
	}
	w.Flush()
	return w.Error()
}

// Scene is the renderer-facing JSON shape of one extruded diagram set.
type Scene struct {
	Kind       string               `json:"kind"`
	Scale      float64              `json:"scale"`
	Frame      []geometry.Segment   `json:"frame"`
	Extrusions []geometry.Extrusion `json:"extrusions"`
}

// WriteSceneJSON exports the frame wireframe plus all girder extrusions for
// an external 3D renderer. Extrusions are ordered by girder index.
func WriteSceneJSON(kind geometry.ForceKind, scale float64, frame []geometry.Segment, extrusions map[int]geometry.Extrusion, filename string) error {
	scene := Scene{
		Kind:  kind.String(),
		Scale: scale,
		Frame: frame,
	}
	indices := make([]int, 0, len(extrusions))
	for g := range extrusions {
		indices = append(indices, g)
	}
	sort.Ints(indices)
	for _, g := range indices {
		scene.Extrusions = append(scene.Extrusions, extrusions[g])
	}

	f, err := createFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(scene)
}

func createFile(filename string) (*os.File, error) {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(filename)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
