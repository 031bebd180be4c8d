// Package config holds the run configuration of the diagram tool: scale
// factors per force kind, hatch density, output folder and girder color
// overrides. Everything here is presentation tuning; the model itself is
// fixed.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/emfajardo/gogrillage/internal/geometry"
)

// Scales are the vertical extrusion factors applied to force values.
type Scales struct {
	Shear  float64 `yaml:"shear" validate:"gt=0"`
	Moment float64 `yaml:"moment" validate:"gt=0"`
}

// Config is the YAML-backed run configuration.
type Config struct {
	Scales       Scales         `yaml:"scale_factors"`
	HatchDensity int            `yaml:"hatch_density" validate:"gte=1,lte=20"`
	OutputDir    string         `yaml:"output_dir" validate:"required"`
	GirderColors map[int]string `yaml:"girder_colors" validate:"dive,keys,gte=1,lte=5,endkeys,required"`
}

// Default returns the documented defaults: moment diagrams at 0.01,
// shear at 0.02, hatching at 5.
func Default() Config {
	return Config{
		Scales:       Scales{Shear: 0.02, Moment: 0.01},
		HatchDensity: 5,
		OutputDir:    "output",
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration constraints.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// ScaleFor returns the configured scale factor for a force kind.
func (c Config) ScaleFor(kind geometry.ForceKind) float64 {
	if kind == geometry.Moment {
		return c.Scales.Moment
	}
	return c.Scales.Shear
}

// ColorFor returns the configured override for a girder index, or the
// model's declared color when none is set.
func (c Config) ColorFor(index int, declared string) string {
	if color, ok := c.GirderColors[index]; ok {
		return color
	}
	return declared
}
