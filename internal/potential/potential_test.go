package potential

import (
	"errors"
	"math"
	"testing"
)

// fullStub implements every raw operation with simple closed forms.
type fullStub struct {
	Base
}

func newFullStub(amp float64) *fullStub {
	return &fullStub{Base: NewBase(amp)}
}

func (s *fullStub) RawEvaluate(R, z, phi float64) float64 {
	return -1.0 / math.Sqrt(R*R+z*z+1)
}

func (s *fullStub) RawRforce(R, z, phi float64) float64 {
	r2 := R*R + z*z + 1
	return -R / (r2 * math.Sqrt(r2))
}

func (s *fullStub) RawZforce(R, z, phi float64) float64 {
	r2 := R*R + z*z + 1
	return -z / (r2 * math.Sqrt(r2))
}

func (s *fullStub) RawDensity(R, z, phi float64) float64 {
	return 1.0 / (R*R + z*z + 1)
}

// bareStub supplies no raw operations at all.
type bareStub struct {
	Base
}

// spinStub is phi-dependent and supplies an azimuthal force.
type spinStub struct {
	Base
}

func (s *spinStub) RawEvaluate(R, z, phi float64) float64 {
	return -math.Cos(phi) / (1 + R*R)
}

func (s *spinStub) RawPhiforce(R, z, phi float64) float64 {
	return -math.Sin(phi) / (1 + R*R)
}

func TestAmplitudeScaling(t *testing.T) {
	unit := newFullStub(1.0)
	scaled := newFullStub(3.5)

	points := [][2]float64{{0.5, 0.1}, {1.0, 0.0}, {2.0, -0.3}}
	for _, pt := range points {
		v1, err := Evaluate(unit, pt[0], pt[1])
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		v2, err := Evaluate(scaled, pt[0], pt[1])
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if math.Abs(v2-3.5*v1) > 1e-12 {
			t.Errorf("at (%.1f,%.1f): expected %.12f, got %.12f", pt[0], pt[1], 3.5*v1, v2)
		}
	}

	f1, _ := Rforce(unit, 1.2, 0.4)
	f2, _ := Rforce(scaled, 1.2, 0.4)
	if math.Abs(f2-3.5*f1) > 1e-12 {
		t.Errorf("Rforce does not scale with amplitude: %f vs %f", f2, 3.5*f1)
	}

	d1, _ := Density(unit, 1.2, 0.4)
	d2, _ := Density(scaled, 1.2, 0.4)
	if math.Abs(d2-3.5*d1) > 1e-12 {
		t.Errorf("Density does not scale with amplitude: %f vs %f", d2, 3.5*d1)
	}
}

func TestNotImplemented(t *testing.T) {
	p := &bareStub{Base: NewBase(1.0)}

	if _, err := Evaluate(p, 1, 0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented from Evaluate, got %v", err)
	}
	if _, err := Rforce(p, 1, 0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented from Rforce, got %v", err)
	}
	if _, err := Zforce(p, 1, 0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented from Zforce, got %v", err)
	}

	_, err := Density(p, 1, 0)
	if err == nil {
		t.Fatal("expected error from Density on bare variant")
	}
	want := "'RawDensity' not implemented for this potential"
	if err.Error() != want {
		t.Errorf("message mismatch: got %q, want %q", err.Error(), want)
	}
}

func TestPhiforceDefaultsToZero(t *testing.T) {
	p := newFullStub(2.0)

	for _, phi := range []float64{0, 0.3, math.Pi, -1.7} {
		f, err := Phiforce(p, 1.0, 0.5, phi)
		if err != nil {
			t.Fatalf("Phiforce should never fail for axisymmetric variants: %v", err)
		}
		if f != 0 {
			t.Errorf("expected exactly 0 at phi=%.2f, got %g", phi, f)
		}
	}
}

func TestPhiforceNonAxisymmetric(t *testing.T) {
	p := &spinStub{Base: NewNonAxiBase(2.0)}

	f, err := Phiforce(p, 1.0, 0.0, math.Pi/2)
	if err != nil {
		t.Fatalf("Phiforce: %v", err)
	}
	want := 2.0 * -math.Sin(math.Pi/2) / 2.0
	if math.Abs(f-want) > 1e-12 {
		t.Errorf("expected %.12f, got %.12f", want, f)
	}
	if p.IsAxisymmetric() {
		t.Error("spinStub should report non-axisymmetric")
	}
}

func TestNormalize(t *testing.T) {
	for _, target := range []float64{1.0, 0.5} {
		p := newFullStub(4.2)
		if err := Normalize(p, target); err != nil {
			t.Fatalf("normalize(%.1f): %v", target, err)
		}
		f, err := Rforce(p, 1.0, 0.0)
		if err != nil {
			t.Fatalf("Rforce after normalize: %v", err)
		}
		if math.Abs(math.Abs(f)-target) > 1e-8 {
			t.Errorf("normalize(%.1f): |Rforce(1,0)| = %.10f", target, math.Abs(f))
		}
	}
}

func TestNormalizeFull(t *testing.T) {
	p := newFullStub(0.1)
	if err := NormalizeFull(p); err != nil {
		t.Fatalf("NormalizeFull: %v", err)
	}
	f, _ := Rforce(p, 1.0, 0.0)
	if math.Abs(math.Abs(f)-1.0) > 1e-8 {
		t.Errorf("|Rforce(1,0)| = %.10f after full normalization", math.Abs(f))
	}
}

// zeroForceStub has a vanishing radial force everywhere.
type zeroForceStub struct {
	Base
}

func (s *zeroForceStub) RawRforce(R, z, phi float64) float64 { return 0 }

func TestNormalizeZeroReferenceForce(t *testing.T) {
	p := &zeroForceStub{Base: NewBase(2.0)}

	err := Normalize(p, 1.0)
	if !errors.Is(err, ErrZeroReferenceForce) {
		t.Fatalf("expected ErrZeroReferenceForce, got %v", err)
	}
	if p.Amplitude() != 2.0 {
		t.Errorf("amplitude mutated on failed normalize: %f", p.Amplitude())
	}
}

func TestNormalizeMissingRforce(t *testing.T) {
	p := &bareStub{Base: NewBase(1.0)}
	if err := Normalize(p, 1.0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestSetAmplitudeRejectsBadValues(t *testing.T) {
	p := newFullStub(1.0)

	for _, bad := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := p.SetAmplitude(bad); !errors.Is(err, ErrBadAmplitude) {
			t.Errorf("SetAmplitude(%v): expected ErrBadAmplitude, got %v", bad, err)
		}
	}
	if p.Amplitude() != 1.0 {
		t.Errorf("amplitude changed by rejected set: %f", p.Amplitude())
	}
}

func TestTooManyPhiValues(t *testing.T) {
	p := newFullStub(1.0)
	if _, err := Evaluate(p, 1, 0, 0.1, 0.2); err == nil {
		t.Error("expected error for two phi values")
	}
}
