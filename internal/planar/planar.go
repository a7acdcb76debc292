// Package planar provides lower-dimensional views of 3D potentials:
// planar (R,phi) projections at z=0 and vertical (z) slices at fixed R.
// Both delegate to the full potential's operations, so amplitude
// scaling and the not-implemented failure policy carry over unchanged.
package planar

import (
	"github.com/san-kum/galpot/internal/potential"
)

// Potential is a (R,phi) view of a 3D potential evaluated at z=0.
type Potential struct {
	src potential.Potential
}

// FromRZ projects a 3D potential onto the galactic plane.
func FromRZ(p potential.Potential) *Potential {
	return &Potential{src: p}
}

// Source returns the underlying 3D potential.
func (p *Potential) Source() potential.Potential { return p.src }

func (p *Potential) IsAxisymmetric() bool { return p.src.IsAxisymmetric() }

func (p *Potential) Evaluate(R float64, phi ...float64) (float64, error) {
	return potential.Evaluate(p.src, R, 0, phi...)
}

func (p *Potential) Rforce(R float64, phi ...float64) (float64, error) {
	return potential.Rforce(p.src, R, 0, phi...)
}

func (p *Potential) Phiforce(R float64, phi ...float64) (float64, error) {
	return potential.Phiforce(p.src, R, 0, phi...)
}

// Vertical is a 1D view of a 3D potential along z at fixed radius.
// Evaluate is offset so Phi(z=0) = 0, the usual convention for
// vertical dynamics.
type Vertical struct {
	src potential.Potential
	R   float64
}

// FromRZVertical slices a 3D potential vertically at radius R.
func FromRZVertical(p potential.Potential, R float64) *Vertical {
	return &Vertical{src: p, R: R}
}

func (v *Vertical) Radius() float64 { return v.R }

func (v *Vertical) Evaluate(z float64) (float64, error) {
	at, err := potential.Evaluate(v.src, v.R, z)
	if err != nil {
		return 0, err
	}
	mid, err := potential.Evaluate(v.src, v.R, 0)
	if err != nil {
		return 0, err
	}
	return at - mid, nil
}

func (v *Vertical) Force(z float64) (float64, error) {
	return potential.Zforce(v.src, v.R, z)
}
