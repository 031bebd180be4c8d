package cmd

import (
	"fmt"

	"github.com/emfajardo/gogrillage/internal/forces"
	"github.com/emfajardo/gogrillage/internal/girder"
	"github.com/emfajardo/gogrillage/internal/model"
)

// pipeline bundles the shared collaborators of every diagram command.
type pipeline struct {
	registry  *model.Registry
	accessor  *forces.Accessor
	extractor *girder.Extractor
}

// newPipeline builds the model registry and loads the force table named by
// the --forces flag.
func newPipeline() (*pipeline, error) {
	registry := model.NewRegistry()
	table, err := forces.LoadCSV(forcesPath)
	if err != nil {
		return nil, fmt.Errorf("loading force table: %w", err)
	}
	accessor := forces.NewAccessor(table)
	return &pipeline{
		registry:  registry,
		accessor:  accessor,
		extractor: girder.NewExtractor(registry, accessor),
	}, nil
}
