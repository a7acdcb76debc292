// Package grid evaluates potentials and densities over a rectangular
// (R,z) sample grid, with an optional JSON savefile so expensive grids
// are computed once and restored on later runs.
package grid

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// Spec describes the sample rectangle.
type Spec struct {
	Rmin, Rmax float64
	NR         int
	Zmin, Zmax float64
	NZ         int
}

// DefaultSpec covers the region of interest around the reference
// radius, matching the conventional plot window.
func DefaultSpec() Spec {
	return Spec{Rmin: 0, Rmax: 1.5, NR: 21, Zmin: -0.5, Zmax: 0.5, NZ: 21}
}

func (s Spec) validate() error {
	if s.NR < 2 || s.NZ < 2 {
		return fmt.Errorf("grid: need at least 2x2 samples, got %dx%d", s.NR, s.NZ)
	}
	if s.Rmax <= s.Rmin || s.Zmax <= s.Zmin {
		return fmt.Errorf("grid: invalid sample rectangle [%g,%g]x[%g,%g]", s.Rmin, s.Rmax, s.Zmin, s.Zmax)
	}
	return nil
}

// Grid holds sampled values, Values[i][j] at (Rs[i], Zs[j]).
type Grid struct {
	Rs     []float64   `json:"rs"`
	Zs     []float64   `json:"zs"`
	Values [][]float64 `json:"values"`
}

func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = min + (max-min)*float64(i)/float64(n-1)
	}
	return out
}

type pointFn func(R, z float64) (float64, error)

func evaluate(sp Spec, at pointFn) (*Grid, error) {
	if err := sp.validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		Rs:     linspace(sp.Rmin, sp.Rmax, sp.NR),
		Zs:     linspace(sp.Zmin, sp.Zmax, sp.NZ),
		Values: make([][]float64, sp.NR),
	}
	for i, R := range g.Rs {
		g.Values[i] = make([]float64, sp.NZ)
		for j, z := range g.Zs {
			v, err := at(R, z)
			if err != nil {
				return nil, err
			}
			g.Values[i][j] = v
		}
	}
	return g, nil
}

// EvaluatePotentials samples the superposed potential of pot (a
// Potential or []Potential) over the rectangle.
func EvaluatePotentials(pot any, sp Spec) (*Grid, error) {
	return evaluate(sp, func(R, z float64) (float64, error) {
		return potential.EvaluatePotentials(R, z, pot)
	})
}

// EvaluateDensities samples the superposed density over the rectangle.
func EvaluateDensities(pot any, sp Spec) (*Grid, error) {
	return evaluate(sp, func(R, z float64) (float64, error) {
		return potential.EvaluateDensities(R, z, pot)
	})
}

// Bounds returns the finite min and max sampled values.
func (g *Grid) Bounds() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range g.Values {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
