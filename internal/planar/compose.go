package planar

import "github.com/san-kum/galpot/internal/potential"

// FromRZList projects every member of a 3D composition.
func FromRZList(pots []potential.Potential) []*Potential {
	out := make([]*Potential, len(pots))
	for i, p := range pots {
		out[i] = FromRZ(p)
	}
	return out
}

// EvaluatePotentials superposes Phi(R,phi) over a planar composition.
func EvaluatePotentials(R float64, pots []*Potential, phi ...float64) (float64, error) {
	sum := 0.0
	for _, p := range pots {
		v, err := p.Evaluate(R, phi...)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// EvaluateRforces superposes the planar radial force.
func EvaluateRforces(R float64, pots []*Potential, phi ...float64) (float64, error) {
	sum := 0.0
	for _, p := range pots {
		v, err := p.Rforce(R, phi...)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// EvaluatePhiforces superposes the planar azimuthal force.
func EvaluatePhiforces(R float64, pots []*Potential, phi ...float64) (float64, error) {
	sum := 0.0
	for _, p := range pots {
		v, err := p.Phiforce(R, phi...)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}
