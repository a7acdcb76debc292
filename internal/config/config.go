// Package config loads and saves galpot run configuration as YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galpot/internal/potential"
	"github.com/san-kum/galpot/internal/registry"
)

const (
	DefaultRmin     = 0.01
	DefaultRmax     = 2.0
	DefaultSamples  = 64
	DefaultDt       = 0.01
	DefaultDuration = 20.0
)

type Config struct {
	Components []Component `yaml:"components"`
	Normalize  float64     `yaml:"normalize"`
	Curve      CurveConfig `yaml:"curve"`
	Grid       GridConfig  `yaml:"grid"`
	Orbit      OrbitConfig `yaml:"orbit"`
}

// Component names one member of the composition.
type Component struct {
	Model  string             `yaml:"model"`
	Params map[string]float64 `yaml:"params"`
}

type CurveConfig struct {
	Rmin    float64 `yaml:"rmin"`
	Rmax    float64 `yaml:"rmax"`
	Samples int     `yaml:"samples"`
}

type GridConfig struct {
	Rmin float64 `yaml:"rmin"`
	Rmax float64 `yaml:"rmax"`
	NR   int     `yaml:"nr"`
	Zmin float64 `yaml:"zmin"`
	Zmax float64 `yaml:"zmax"`
	NZ   int     `yaml:"nz"`
}

type OrbitConfig struct {
	Stepper  string  `yaml:"stepper"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	R        float64 `yaml:"r"`
	VR       float64 `yaml:"vr"`
	VT       float64 `yaml:"vt"`
	Z        float64 `yaml:"z"`
	VZ       float64 `yaml:"vz"`
	Phi      float64 `yaml:"phi"`
}

func DefaultConfig() *Config {
	return &Config{
		Components: []Component{
			{Model: "miyamoto", Params: map[string]float64{"amp": 1.0}},
		},
		Curve: CurveConfig{
			Rmin:    DefaultRmin,
			Rmax:    DefaultRmax,
			Samples: DefaultSamples,
		},
		Grid: GridConfig{
			Rmin: 0, Rmax: 1.5, NR: 21,
			Zmin: -0.5, Zmax: 0.5, NZ: 21,
		},
		Orbit: OrbitConfig{
			Stepper:  "rk4",
			Dt:       DefaultDt,
			Duration: DefaultDuration,
			R:        1.0,
			VT:       1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildPotentials resolves the components through the registry and
// applies the configured normalization to the first component.
func (c *Config) BuildPotentials(r *registry.Registry) ([]potential.Potential, error) {
	if len(c.Components) == 0 {
		return nil, fmt.Errorf("config: no components given")
	}
	pots := make([]potential.Potential, 0, len(c.Components))
	for _, comp := range c.Components {
		p, err := r.Get(comp.Model, comp.Params)
		if err != nil {
			return nil, err
		}
		pots = append(pots, p)
	}
	if c.Normalize > 0 {
		if err := potential.Normalize(pots[0], c.Normalize); err != nil {
			return nil, err
		}
	}
	return pots, nil
}
