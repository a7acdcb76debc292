package orbit

// Stepper advances a phase-space point by one timestep.
type Stepper interface {
	Step(pot any, s State, dt float64) (State, error)
}

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(pot any, s State, dt float64) (State, error) {
	ds, err := derive(pot, s)
	if err != nil {
		return nil, err
	}
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + dt*ds[i]
	}
	return result, nil
}

type RK4 struct {
	scratch State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.scratch = make(State, n)
	}
}

func (r *RK4) Step(pot any, s State, dt float64) (State, error) {
	n := len(s)
	r.ensureScratch(n)

	k1, err := derive(pot, s)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + dt*0.5*k1[i]
	}
	k2, err := derive(pot, r.scratch)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + dt*0.5*k2[i]
	}
	k3, err := derive(pot, r.scratch)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + dt*k3[i]
	}
	k4, err := derive(pot, r.scratch)
	if err != nil {
		return nil, err
	}

	result := make(State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = s[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result, nil
}
