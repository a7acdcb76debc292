// Package orbit integrates test-particle orbits in a gravitational
// potential, using the cylindrical phase-space coordinates
// (R, vR, vT, z, vz, phi) where vT is the tangential velocity.
package orbit

import (
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// State vector indices.
const (
	IdxR = iota
	IdxVR
	IdxVT
	IdxZ
	IdxVZ
	IdxPhi
	Dim
)

type State []float64

// NewState builds a phase-space point. R must be positive; the
// cylindrical equations of motion are singular on the axis.
func NewState(R, vR, vT, z, vz, phi float64) State {
	return State{R, vR, vT, z, vz, phi}
}

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return len(s) == Dim && s[IdxR] > 0
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// derive evaluates the cylindrical equations of motion under pot
// (a potential.Potential or []potential.Potential).
func derive(pot any, s State) (State, error) {
	R, vR, vT := s[IdxR], s[IdxVR], s[IdxVT]
	z, vz, phi := s[IdxZ], s[IdxVZ], s[IdxPhi]

	fR, err := potential.EvaluateRforces(R, z, pot, phi)
	if err != nil {
		return nil, err
	}
	fz, err := potential.EvaluateZforces(R, z, pot, phi)
	if err != nil {
		return nil, err
	}
	fphi, err := potential.EvaluatePhiforces(R, z, pot, phi)
	if err != nil {
		return nil, err
	}

	d := make(State, Dim)
	d[IdxR] = vR
	d[IdxVR] = fR + vT*vT/R
	d[IdxVT] = fphi/R - vR*vT/R
	d[IdxZ] = vz
	d[IdxVZ] = fz
	d[IdxPhi] = vT / R
	return d, nil
}

// Energy returns the specific energy 0.5*v^2 + Phi of a phase-space
// point, the conserved quantity for static potentials.
func Energy(pot any, s State) (float64, error) {
	v2 := s[IdxVR]*s[IdxVR] + s[IdxVT]*s[IdxVT] + s[IdxVZ]*s[IdxVZ]
	phi, err := potential.EvaluatePotentials(s[IdxR], s[IdxZ], pot, s[IdxPhi])
	if err != nil {
		return 0, err
	}
	return 0.5*v2 + phi, nil
}

// AngularMomentum returns L_z = R * vT, conserved in axisymmetric
// potentials.
func AngularMomentum(s State) float64 {
	return s[IdxR] * s[IdxVT]
}
