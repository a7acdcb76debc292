// Package registry maps model names to potential factories so the CLI
// and config layer can build potentials from plain strings.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/galpot/internal/models"
	"github.com/san-kum/galpot/internal/potential"
)

// Factory builds a potential from a parameter map. Missing keys fall
// back to the model's defaults; "amp" is honored by every factory.
type Factory func(params map[string]float64) potential.Potential

type Registry struct {
	factories map[string]Factory
}

func New() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.factories["kepler"] = func(p map[string]float64) potential.Potential {
		return models.NewKepler(param(p, "amp", 1.0))
	}
	r.factories["plummer"] = func(p map[string]float64) potential.Potential {
		return models.NewPlummer(param(p, "amp", 1.0), param(p, "b", 0.8))
	}
	r.factories["miyamoto"] = func(p map[string]float64) potential.Potential {
		return models.NewMiyamotoNagai(param(p, "amp", 1.0), param(p, "a", 0.5), param(p, "b", 0.0375))
	}
	r.factories["loghalo"] = func(p map[string]float64) potential.Potential {
		return models.NewLogHalo(param(p, "amp", 1.0), param(p, "core", 0.2), param(p, "q", 0.9))
	}
	r.factories["cosmphi"] = func(p map[string]float64) potential.Potential {
		return models.NewCosMPhiDisk(param(p, "amp", 1.0), int(param(p, "m", 2)), param(p, "pa", 0.0))
	}

	return r
}

// Get builds the named model.
func (r *Registry) Get(name string, params map[string]float64) (potential.Potential, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(params), nil
}

// List returns the registered model names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func param(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
