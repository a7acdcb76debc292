package models

import (
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// Kepler is the potential of a point mass at the origin. Its density is
// a delta function, so RawDensity is deliberately absent.
type Kepler struct {
	potential.Base
}

func NewKepler(amp float64) *Kepler {
	return &Kepler{Base: potential.NewBase(amp)}
}

func (k *Kepler) RawEvaluate(R, z, phi float64) float64 {
	return -1.0 / math.Sqrt(R*R+z*z)
}

func (k *Kepler) RawRforce(R, z, phi float64) float64 {
	r2 := R*R + z*z
	return -R / (r2 * math.Sqrt(r2))
}

func (k *Kepler) RawZforce(R, z, phi float64) float64 {
	r2 := R*R + z*z
	return -z / (r2 * math.Sqrt(r2))
}
