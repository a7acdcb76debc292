// Package models provides concrete gravitational potential variants.
//
// Each variant embeds [potential.Base] and implements the raw-operation
// interfaces it supports:
//
//   - [Kepler]: point mass (no closed-form density)
//   - [Plummer]: softened sphere
//   - [MiyamotoNagai]: flattened disk
//   - [LogHalo]: logarithmic halo with a flat rotation curve
//   - [CosMPhiDisk]: non-axisymmetric m-fold disk perturbation
//
// Units follow the usual convention of this domain: G = 1 and lengths
// and velocities are measured in reference-radius units, so a potential
// normalized with potential.NormalizeFull has circular velocity 1 at
// R = 1. Several variants also implement [potential.Configurable] for
// runtime parameter adjustment.
package models
