package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/emfajardo/gogrillage/internal/geometry"
	"github.com/emfajardo/gogrillage/internal/girder"
)

// kindStyle bundles the drawing colors and axis labels of a force kind.
type kindStyle struct {
	title     string
	axisLabel string
	unit      string
	line      color.RGBA
	hatch     color.RGBA
}

func styleFor(kind geometry.ForceKind) kindStyle {
	if kind == geometry.Moment {
		return kindStyle{
			title:     "Bending Moment Diagram (BMD)",
			axisLabel: "Bending Moment (kN·m)",
			unit:      "kN·m",
			line:      color.RGBA{R: 139, A: 255},
			hatch:     color.RGBA{R: 255, A: 255},
		}
	}
	return kindStyle{
		title:     "Shear Force Diagram (SFD)",
		axisLabel: "Shear Force (kN)",
		unit:      "kN",
		line:      color.RGBA{B: 139, A: 255},
		hatch:     color.RGBA{B: 255, A: 255},
	}
}

// ExportProfileDiagram draws one girder's force profile as a hatched 2D line
// chart with markers at each sampled position and an annotation at the
// largest-magnitude value, then saves it to an image file (.png, .svg or
// .pdf by extension).
func ExportProfileDiagram(series girder.Series, kind geometry.ForceKind, girderIndex int, hatchDensity int, filename string) error {
	if len(series) == 0 {
		return girder.ErrEmptyProfile
	}

	style := styleFor(kind)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Girder %d - %s", girderIndex, style.title)
	p.X.Label.Text = "Position along Girder (m)"
	p.Y.Label.Text = style.axisLabel

	// Hatched fill: vertical lines from the zero axis to the profile,
	// densified between samples.
	for i := 0; i < len(series)-1; i++ {
		steps := hatchDensity + 1
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			x := series[i].Position + t*(series[i+1].Position-series[i].Position)
			v := series[i].Value + t*(series[i+1].Value-series[i].Value)
			hatch, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: v}})
			if err != nil {
				return err
			}
			hatch.LineStyle.Width = vg.Points(0.5)
			hatch.LineStyle.Color = style.hatch
			p.Add(hatch)
		}
	}

	// Zero reference axis across the span.
	zero, err := plotter.NewLine(plotter.XYs{
		{X: series[0].Position, Y: 0},
		{X: series[len(series)-1].Position, Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(2)
	zero.LineStyle.Color = color.Black
	p.Add(zero)

	// Profile line with markers at each sample.
	pts := make(plotter.XYs, len(series))
	for i, s := range series {
		pts[i] = plotter.XY{X: s.Position, Y: s.Value}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.5)
	line.LineStyle.Color = style.line
	p.Add(line)

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	markers.GlyphStyle.Color = style.line
	markers.GlyphStyle.Radius = vg.Points(3)
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(markers)

	// Annotate the largest-magnitude value.
	peak := 0
	for i, s := range series {
		if math.Abs(s.Value) > math.Abs(series[peak].Value) {
			peak = i
		}
	}
	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: series[peak].Position, Y: series[peak].Value}},
		Labels: []string{fmt.Sprintf("Max: %.2f %s", series[peak].Value, style.unit)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return save(p, 12*vg.Inch, 6*vg.Inch, filename)
}

// save writes a plot to file, creating the directory if needed. Unknown
// extensions fall back to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
