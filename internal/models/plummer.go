package models

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// Plummer is a softened sphere with scale length B.
type Plummer struct {
	potential.Base
	B float64
}

func NewPlummer(amp, b float64) *Plummer {
	return &Plummer{Base: potential.NewBase(amp), B: b}
}

func (p *Plummer) RawEvaluate(R, z, phi float64) float64 {
	return -1.0 / math.Sqrt(R*R+z*z+p.B*p.B)
}

func (p *Plummer) RawRforce(R, z, phi float64) float64 {
	d := R*R + z*z + p.B*p.B
	return -R / (d * math.Sqrt(d))
}

func (p *Plummer) RawZforce(R, z, phi float64) float64 {
	d := R*R + z*z + p.B*p.B
	return -z / (d * math.Sqrt(d))
}

func (p *Plummer) RawDensity(R, z, phi float64) float64 {
	d := R*R + z*z + p.B*p.B
	return 3.0 * p.B * p.B / (4.0 * math.Pi * d * d * math.Sqrt(d))
}

func (p *Plummer) GetParams() map[string]float64 {
	return map[string]float64{"b": p.B}
}

func (p *Plummer) SetParam(name string, value float64) error {
	switch name {
	case "b":
		if value <= 0 {
			return fmt.Errorf("scale length must be positive, got %f", value)
		}
		p.B = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
