package models

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// CosMPhiDisk is an m-fold azimuthal perturbation of the disk plane,
// Phi = -p(R) g(z) cos(m(phi - Pa)), with p(R) = R^2/(1+R^2)^2 and
// g(z) = 1/(1+z^2). m=2 models a weak bar. Meant to be superposed on
// an axisymmetric background, not used standalone; it has no
// closed-form density.
type CosMPhiDisk struct {
	potential.Base
	M  int
	Pa float64
}

func NewCosMPhiDisk(amp float64, m int, pa float64) *CosMPhiDisk {
	return &CosMPhiDisk{Base: potential.NewNonAxiBase(amp), M: m, Pa: pa}
}

func (c *CosMPhiDisk) radial(R float64) float64 {
	d := 1 + R*R
	return R * R / (d * d)
}

func (c *CosMPhiDisk) dRadial(R float64) float64 {
	d := 1 + R*R
	return 2.0 * R * (1 - R*R) / (d * d * d)
}

func (c *CosMPhiDisk) vertical(z float64) float64 {
	return 1.0 / (1 + z*z)
}

func (c *CosMPhiDisk) RawEvaluate(R, z, phi float64) float64 {
	theta := float64(c.M) * (phi - c.Pa)
	return -c.radial(R) * c.vertical(z) * math.Cos(theta)
}

func (c *CosMPhiDisk) RawRforce(R, z, phi float64) float64 {
	theta := float64(c.M) * (phi - c.Pa)
	return c.dRadial(R) * c.vertical(z) * math.Cos(theta)
}

func (c *CosMPhiDisk) RawZforce(R, z, phi float64) float64 {
	theta := float64(c.M) * (phi - c.Pa)
	d := 1 + z*z
	return -c.radial(R) * 2.0 * z / (d * d) * math.Cos(theta)
}

func (c *CosMPhiDisk) RawPhiforce(R, z, phi float64) float64 {
	theta := float64(c.M) * (phi - c.Pa)
	return -c.radial(R) * c.vertical(z) * float64(c.M) * math.Sin(theta)
}

func (c *CosMPhiDisk) GetParams() map[string]float64 {
	return map[string]float64{"m": float64(c.M), "pa": c.Pa}
}

func (c *CosMPhiDisk) SetParam(name string, value float64) error {
	switch name {
	case "m":
		if value < 1 {
			return fmt.Errorf("mode number must be at least 1, got %f", value)
		}
		c.M = int(value)
	case "pa":
		c.Pa = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
