package potential

import (
	"errors"
	"math"
)

// Potential is the minimal contract every variant satisfies. Variants
// embed [Base] to get it for free and add raw operations on top.
type Potential interface {
	Amplitude() float64
	SetAmplitude(amp float64) error
	Dim() int
	IsAxisymmetric() bool
}

// Raw-operation capabilities. All raw values are unscaled (amplitude 1);
// scaling happens in the package functions, never in variants.
// Axisymmetric variants ignore the phi argument.
type Evaluator interface {
	RawEvaluate(R, z, phi float64) float64
}

type RadialForcer interface {
	RawRforce(R, z, phi float64) float64
}

type VerticalForcer interface {
	RawZforce(R, z, phi float64) float64
}

type AzimuthalForcer interface {
	RawPhiforce(R, z, phi float64) float64
}

type DensityProvider interface {
	RawDensity(R, z, phi float64) float64
}

// Configurable is an optional capability for runtime parameter
// inspection and adjustment, used by the live explorer.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Base carries the amplitude and symmetry flags shared by all variants.
type Base struct {
	amp    float64
	dim    int
	nonAxi bool
}

// NewBase returns an axisymmetric 3D base with the given amplitude.
func NewBase(amp float64) Base {
	return Base{amp: amp, dim: 3}
}

// NewNonAxiBase returns a base for a phi-dependent variant.
func NewNonAxiBase(amp float64) Base {
	return Base{amp: amp, dim: 3, nonAxi: true}
}

func (b *Base) Amplitude() float64 { return b.amp }

// SetAmplitude overwrites the amplitude. It rejects zero and non-finite
// values so a potential can never be left in an unusable state.
func (b *Base) SetAmplitude(amp float64) error {
	if amp == 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
		return &Error{Op: "SetAmplitude", Wrapped: ErrBadAmplitude}
	}
	b.amp = amp
	return nil
}

func (b *Base) Dim() int             { return b.dim }
func (b *Base) IsAxisymmetric() bool { return !b.nonAxi }

var errTooManyPhi = errors.New("potential: at most one phi value may be given")

// phiArg resolves the optional azimuth. An omitted phi is an
// axisymmetric query and evaluates at phi=0.
func phiArg(op string, phi []float64) (float64, error) {
	switch len(phi) {
	case 0:
		return 0, nil
	case 1:
		return phi[0], nil
	default:
		return 0, &Error{Op: op, Wrapped: errTooManyPhi}
	}
}

// Evaluate returns amplitude * Phi(R,z,phi).
func Evaluate(p Potential, R, z float64, phi ...float64) (float64, error) {
	az, err := phiArg("Evaluate", phi)
	if err != nil {
		return 0, err
	}
	e, ok := p.(Evaluator)
	if !ok {
		return 0, notImplemented("RawEvaluate")
	}
	return p.Amplitude() * e.RawEvaluate(R, z, az), nil
}

// Rforce returns the amplitude-scaled radial force K_R = -dPhi/dR.
func Rforce(p Potential, R, z float64, phi ...float64) (float64, error) {
	az, err := phiArg("Rforce", phi)
	if err != nil {
		return 0, err
	}
	f, ok := p.(RadialForcer)
	if !ok {
		return 0, notImplemented("RawRforce")
	}
	return p.Amplitude() * f.RawRforce(R, z, az), nil
}

// Zforce returns the amplitude-scaled vertical force K_z = -dPhi/dz.
func Zforce(p Potential, R, z float64, phi ...float64) (float64, error) {
	az, err := phiArg("Zforce", phi)
	if err != nil {
		return 0, err
	}
	f, ok := p.(VerticalForcer)
	if !ok {
		return 0, notImplemented("RawZforce")
	}
	return p.Amplitude() * f.RawZforce(R, z, az), nil
}

// Phiforce returns the amplitude-scaled azimuthal force K_phi.
// A variant without RawPhiforce has no phi-dependence, so the force is
// identically zero rather than an error.
func Phiforce(p Potential, R, z float64, phi ...float64) (float64, error) {
	az, err := phiArg("Phiforce", phi)
	if err != nil {
		return 0, err
	}
	f, ok := p.(AzimuthalForcer)
	if !ok {
		return 0, nil
	}
	return p.Amplitude() * f.RawPhiforce(R, z, az), nil
}

// Density returns the amplitude-scaled mass density rho(R,z,phi).
func Density(p Potential, R, z float64, phi ...float64) (float64, error) {
	az, err := phiArg("Density", phi)
	if err != nil {
		return 0, err
	}
	d, ok := p.(DensityProvider)
	if !ok {
		return 0, notImplemented("RawDensity")
	}
	return p.Amplitude() * d.RawDensity(R, z, az), nil
}

// Normalize rescales p's amplitude in place so the radial force at the
// reference point (R=1, z=0) has magnitude target. This calibrates the
// circular velocity at R=1 to sqrt(target) of the unit velocity. The
// reference force is computed at the old amplitude; on any error the
// amplitude is left untouched.
func Normalize(p Potential, target float64) error {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return &Error{Op: "Normalize", Wrapped: ErrBadAmplitude}
	}
	ref, err := Rforce(p, 1, 0)
	if err != nil {
		return err
	}
	abs := math.Abs(ref)
	if abs == 0 || math.IsNaN(abs) || math.IsInf(abs, 0) {
		return &Error{Op: "Normalize", Wrapped: ErrZeroReferenceForce}
	}
	return p.SetAmplitude(p.Amplitude() * target / abs)
}

// NormalizeFull is Normalize with target 1: the circular velocity at
// R=1 becomes exactly the unit velocity.
func NormalizeFull(p Potential) error {
	return Normalize(p, 1)
}
