package models

import (
	"fmt"
	"math"

	"github.com/san-kum/galpot/internal/potential"
)

// LogHalo is a logarithmic halo with core radius Core and flattening Q.
// Its rotation curve is asymptotically flat, so the potential grows
// without bound and has no escape velocity.
type LogHalo struct {
	potential.Base
	Core float64
	Q    float64
}

func NewLogHalo(amp, core, q float64) *LogHalo {
	return &LogHalo{Base: potential.NewBase(amp), Core: core, Q: q}
}

func (l *LogHalo) u(R, z float64) float64 {
	return R*R + z*z/(l.Q*l.Q) + l.Core*l.Core
}

func (l *LogHalo) RawEvaluate(R, z, phi float64) float64 {
	return 0.5 * math.Log(l.u(R, z))
}

func (l *LogHalo) RawRforce(R, z, phi float64) float64 {
	return -R / l.u(R, z)
}

func (l *LogHalo) RawZforce(R, z, phi float64) float64 {
	return -z / (l.Q * l.Q * l.u(R, z))
}

func (l *LogHalo) RawDensity(R, z, phi float64) float64 {
	u := l.u(R, z)
	q2 := l.Q * l.Q
	lap := 2.0/u - 2.0*R*R/(u*u) + 1.0/(q2*u) - 2.0*z*z/(q2*q2*u*u)
	return lap / (4.0 * math.Pi)
}

func (l *LogHalo) GetParams() map[string]float64 {
	return map[string]float64{"core": l.Core, "q": l.Q}
}

func (l *LogHalo) SetParam(name string, value float64) error {
	switch name {
	case "core":
		if value < 0 {
			return fmt.Errorf("core radius must be non-negative, got %f", value)
		}
		l.Core = value
	case "q":
		if value <= 0 || value > 1 {
			return fmt.Errorf("flattening must be in (0,1], got %f", value)
		}
		l.Q = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
