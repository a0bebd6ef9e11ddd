package integrator

// RK4 defines a classical fourth order Runge Kutta integrator.
type RK4 struct {
	X0         float64    // The initial x0.
	StepSize   float64    // The step size.
	Integrable Integrable // What is to be integrated.
}

// NewRK4 returns a new RK4 integrator instance.
func NewRK4(x0 float64, stepSize float64, inte Integrable) *RK4 {
	if stepSize <= 0 {
		panic("config StepSize must be positive")
	}
	if inte == nil {
		panic("config Integrable may not be nil")
	}
	return &RK4{X0: x0, StepSize: stepSize, Integrable: inte}
}

// Solve solves the configured RK4.
// Returns the number of iterations performed and the last X_i.
func (r *RK4) Solve() (uint64, float64) {
	const (
		half     = 1 / 2.0
		oneSixth = 1 / 6.0
		oneThird = 1 / 3.0
	)

	iterNum := uint64(0)
	xi := r.X0
	halfStep := r.StepSize * half
	for !r.Integrable.Stop(iterNum) {
		state := r.Integrable.GetState()
		newState := make([]float64, len(state))
		k1 := make([]float64, len(state))
		k2 := make([]float64, len(state))
		k3 := make([]float64, len(state))
		tState := make([]float64, len(state))

		for i, y := range r.Integrable.Func(xi, state) {
			k1[i] = y * r.StepSize
			tState[i] = state[i] + k1[i]*half
		}
		for i, y := range r.Integrable.Func(xi+halfStep, tState) {
			k2[i] = y * r.StepSize
			tState[i] = state[i] + k2[i]*half
		}
		for i, y := range r.Integrable.Func(xi+halfStep, tState) {
			k3[i] = y * r.StepSize
			tState[i] = state[i] + k3[i]
		}
		for i, y := range r.Integrable.Func(xi+r.StepSize, tState) {
			k4 := y * r.StepSize
			newState[i] = state[i] + oneSixth*(k1[i]+k4) + oneThird*(k2[i]+k3[i])
		}
		r.Integrable.SetState(iterNum, newState)

		xi += r.StepSize
		iterNum++ // Don't forget to increment the number of iterations.
	}

	return iterNum, xi
}
