package models

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// MiyamotoNagai is a flattened disk potential with radial scale A and
// vertical scale B. A=0 reduces it to a Plummer sphere.
type MiyamotoNagai struct {
	potential.Base
	A float64
	B float64
}

func NewMiyamotoNagai(amp, a, b float64) *MiyamotoNagai {
	return &MiyamotoNagai{Base: potential.NewBase(amp), A: a, B: b}
}

func (m *MiyamotoNagai) RawEvaluate(R, z, phi float64) float64 {
	s := m.A + math.Sqrt(z*z+m.B*m.B)
	return -1.0 / math.Sqrt(R*R+s*s)
}

func (m *MiyamotoNagai) RawRforce(R, z, phi float64) float64 {
	s := m.A + math.Sqrt(z*z+m.B*m.B)
	d := R*R + s*s
	return -R / (d * math.Sqrt(d))
}

func (m *MiyamotoNagai) RawZforce(R, z, phi float64) float64 {
	zb := math.Sqrt(z*z + m.B*m.B)
	s := m.A + zb
	d := R*R + s*s
	return -z * s / (zb * d * math.Sqrt(d))
}

func (m *MiyamotoNagai) RawDensity(R, z, phi float64) float64 {
	zb := math.Sqrt(z*z + m.B*m.B)
	s := m.A + zb
	d := R*R + s*s
	num := m.A*R*R + (m.A+3.0*zb)*s*s
	return m.B * m.B * num / (4.0 * math.Pi * d * d * math.Sqrt(d) * zb * zb * zb)
}

func (m *MiyamotoNagai) GetParams() map[string]float64 {
	return map[string]float64{"a": m.A, "b": m.B}
}

func (m *MiyamotoNagai) SetParam(name string, value float64) error {
	switch name {
	case "a":
		if value < 0 {
			return fmt.Errorf("disk scale must be non-negative, got %f", value)
		}
		m.A = value
	case "b":
		if value <= 0 {
			return fmt.Errorf("vertical scale must be positive, got %f", value)
		}
		m.B = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
