package orbit

import (
	"context"
	"fmt"
	"math"
)

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
	}
}

type Result struct {
	States      []State
	Times       []float64
	EnergyDrift float64
	StepsTaken  int
}

// Integrate advances s0 through pot for the configured duration,
// recording every step. The relative energy drift between the first
// and last state is reported when the potential supports evaluation.
func Integrate(ctx context.Context, pot any, s0 State, step Stepper, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("orbit: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("orbit: duration must be positive, got %f", cfg.Duration)
	}
	if !s0.IsValid() {
		return nil, fmt.Errorf("orbit: invalid initial state")
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States: make([]State, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}

	s := s0.Clone()
	t := 0.0
	result.States = append(result.States, s.Clone())
	result.Times = append(result.Times, t)

	initialEnergy, eErr := Energy(pot, s)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next, err := step.Step(pot, s, cfg.Dt)
		if err != nil {
			return result, err
		}
		if cfg.ValidateState && !next.IsValid() {
			return result, fmt.Errorf("orbit: invalid state at t=%.4f (NaN/Inf or R<=0)", t)
		}

		s = next
		t += cfg.Dt
		result.StepsTaken++
		result.States = append(result.States, s.Clone())
		result.Times = append(result.Times, t)
	}

	if eErr == nil && initialEnergy != 0 {
		finalEnergy, err := Energy(pot, s)
		if err == nil {
			result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
		}
	}

	return result, nil
}
