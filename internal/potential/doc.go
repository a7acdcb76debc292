// Package potential provides the core abstraction for gravitational
// potentials in cylindrical coordinates (R, z, phi).
//
// A concrete variant embeds [Base] (which carries the amplitude and
// symmetry flags) and implements whichever raw-operation interfaces it
// supports:
//
//   - [Evaluator]: Phi(R,z,phi)
//   - [RadialForcer]: K_R = -dPhi/dR
//   - [VerticalForcer]: K_z = -dPhi/dz
//   - [AzimuthalForcer]: K_phi = -dPhi/dphi
//   - [DensityProvider]: rho(R,z,phi) via Poisson's equation
//
// The package functions [Evaluate], [Rforce], [Zforce], [Phiforce] and
// [Density] check support by type assertion, multiply the raw value by
// the variant's amplitude, and report a typed [Error] when the raw
// operation is missing. Azimuthal force is the exception: a variant
// without RawPhiforce is axisymmetric, so Phiforce returns 0.
//
// # Composition
//
// The evaluate* functions accept either a single [Potential] or a
// []Potential and superpose the per-instance quantity:
//
//	total, err := potential.EvaluateRforces(1.0, 0.0, []potential.Potential{disk, halo})
//
// # Thread Safety
//
// Evaluation is side-effect free. [Normalize] mutates a potential's
// amplitude in place and must not race with readers; the package does
// no internal locking.
package potential
