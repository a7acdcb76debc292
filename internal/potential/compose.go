package potential

// The evaluate* functions accept either a single Potential or a
// []Potential and superpose the per-instance quantity. Summation is
// plain float64 accumulation in list order, so results are reproducible
// but only order-independent up to IEEE-754 rounding.

type scaledOp func(p Potential, R, z float64, phi ...float64) (float64, error)

func compose(fn string, op scaledOp, R, z float64, pot any, phi []float64) (float64, error) {
	switch p := pot.(type) {
	case Potential:
		return op(p, R, z, phi...)
	case []Potential:
		sum := 0.0
		for _, q := range p {
			v, err := op(q, R, z, phi...)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	default:
		return 0, invalidInput(fn)
	}
}

// EvaluatePotentials returns the superposed Phi(R,z,phi) of pot, which
// must be a Potential or a []Potential.
func EvaluatePotentials(R, z float64, pot any, phi ...float64) (float64, error) {
	return compose("EvaluatePotentials", Evaluate, R, z, pot, phi)
}

// EvaluateDensities returns the superposed mass density rho(R,z,phi).
func EvaluateDensities(R, z float64, pot any, phi ...float64) (float64, error) {
	return compose("EvaluateDensities", Density, R, z, pot, phi)
}

// EvaluateRforces returns the superposed radial force K_R(R,z,phi).
func EvaluateRforces(R, z float64, pot any, phi ...float64) (float64, error) {
	return compose("EvaluateRforces", Rforce, R, z, pot, phi)
}

// EvaluatePhiforces returns the superposed azimuthal force K_phi(R,z,phi).
func EvaluatePhiforces(R, z float64, pot any, phi ...float64) (float64, error) {
	return compose("EvaluatePhiforces", Phiforce, R, z, pot, phi)
}

// EvaluateZforces returns the superposed vertical force K_z(R,z,phi).
func EvaluateZforces(R, z float64, pot any, phi ...float64) (float64, error) {
	return compose("EvaluateZforces", Zforce, R, z, pot, phi)
}
