// Package curves samples rotation and escape-velocity curves of a
// potential (or superposition of potentials) in the galactic plane.
package curves

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// Sample is one point of a velocity curve.
type Sample struct {
	R float64
	V float64
}

// VCirc returns the circular velocity at radius R in the z=0 plane,
// vc = sqrt(R * |K_R|). pot is a Potential or []Potential.
func VCirc(pot any, R float64) (float64, error) {
	f, err := potential.EvaluateRforces(R, 0, pot)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(R * math.Abs(f)), nil
}

// VEsc returns the escape velocity at radius R under the convention
// Phi(inf) = 0: ve = sqrt(-2 Phi(R,0)). A positive potential value
// means the convention does not apply (e.g. a logarithmic halo) and is
// reported as an error rather than a NaN.
func VEsc(pot any, R float64) (float64, error) {
	v, err := potential.EvaluatePotentials(R, 0, pot)
	if err != nil {
		return 0, err
	}
	if v > 0 {
		return 0, fmt.Errorf("curves: potential is positive at R=%.4f; escape velocity undefined for potentials that do not vanish at infinity", R)
	}
	return math.Sqrt(-2 * v), nil
}

// Rotation samples the rotation curve on n evenly spaced radii in
// [rmin, rmax].
func Rotation(pot any, rmin, rmax float64, n int) ([]Sample, error) {
	if err := checkRange(rmin, rmax, n); err != nil {
		return nil, err
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		R := rmin + (rmax-rmin)*float64(i)/float64(n-1)
		v, err := VCirc(pot, R)
		if err != nil {
			return nil, err
		}
		out[i] = Sample{R: R, V: v}
	}
	return out, nil
}

// Escape samples the escape-velocity curve on n evenly spaced radii in
// [rmin, rmax].
func Escape(pot any, rmin, rmax float64, n int) ([]Sample, error) {
	if err := checkRange(rmin, rmax, n); err != nil {
		return nil, err
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		R := rmin + (rmax-rmin)*float64(i)/float64(n-1)
		v, err := VEsc(pot, R)
		if err != nil {
			return nil, err
		}
		out[i] = Sample{R: R, V: v}
	}
	return out, nil
}

// Velocities extracts the V column for plotting.
func Velocities(samples []Sample) []float64 {
	vs := make([]float64, len(samples))
	for i, s := range samples {
		vs[i] = s.V
	}
	return vs
}

func checkRange(rmin, rmax float64, n int) error {
	if n < 2 {
		return fmt.Errorf("curves: need at least 2 samples, got %d", n)
	}
	if rmin < 0 || rmax <= rmin {
		return fmt.Errorf("curves: invalid radius range [%f, %f]", rmin, rmax)
	}
	return nil
}
