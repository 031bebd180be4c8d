package girder

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/emfajardo/gogrillage/internal/forces"
	"github.com/emfajardo/gogrillage/internal/model"
)

// Extraction invariants that must hold for any force table: positions are
// non-decreasing, the series spans the whole girder, and its length sits
// between elements+1 (fully coalesced) and 2·elements (every junction a
// jump).
func TestExtractInvariants(t *testing.T) {
	registry := model.NewRegistry()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("profiles are ordered and bounded", prop.ForAll(
		func(index int, values []float64) bool {
			elems, err := registry.GirderElements(index)
			if err != nil {
				return false
			}
			table := forces.NewTable()
			for i, id := range elems {
				table.SetSample(id, forces.Sample{
					ShearStart:  values[4*i],
					ShearEnd:    values[4*i+1],
					MomentStart: values[4*i+2],
					MomentEnd:   values[4*i+3],
				})
			}

			profile, err := NewExtractor(registry, forces.NewAccessor(table)).Extract(index)
			if err != nil {
				return false
			}

			for _, series := range []Series{profile.Shear, profile.Moment} {
				n := len(elems)
				if len(series) < n+1 || len(series) > 2*n {
					return false
				}
				if series[0].Position != 0 || series[len(series)-1].Position != model.Span {
					return false
				}
				for i := 1; i < len(series); i++ {
					if series[i].Position < series[i-1].Position {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, model.GirderCount),
		gen.SliceOfN(4*model.GirderSegments, gen.Float64Range(-5000, 5000)),
	))

	properties.TestingRun(t)
}
