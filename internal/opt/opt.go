// Package opt provides optimization algorithms.
package opt

import "math"

// Optimizer updates a parameter slice in place from its gradient slice.
// Stateful optimizers track state per distinct parameter slice, so one
// optimizer instance can serve every layer of a network.
type Optimizer interface {
	// Step updates params in place: params and grads must have the same
	// length and params must be the same backing slice on every call.
	Step(params, grads []float64)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// NewSGD creates an SGD optimizer with the given learning rate.
func NewSGD(learningRate float64) *SGD {
	return &SGD{LearningRate: learningRate}
}

// Step updates params in place: params = params - lr * grads.
func (s *SGD) Step(params, grads []float64) {
	if len(params) != len(grads) {
		panic("opt: SGD.Step: params and grads must have same length")
	}
	for i := range params {
		params[i] -= s.LearningRate * grads[i]
	}
}

// Adam optimizer with bias-corrected first and second moment estimates.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * g
//	v_t = beta2 * v_{t-1} + (1-beta2) * g^2
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param -= lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	LearningRate float64
	Beta1        float64 // Exponential decay rate for first moment
	Beta2        float64 // Exponential decay rate for second moment
	Epsilon      float64 // Small constant for numerical stability

	// Moment state, keyed by the identity of the parameter slice.
	state map[*float64]*adamState
}

type adamState struct {
	m, v []float64
	t    int
}

// NewAdam creates a new Adam optimizer with default hyperparameters
// (beta1=0.9, beta2=0.999, eps=1e-8).
func NewAdam(learningRate float64) *Adam {
	return &Adam{
		LearningRate: learningRate,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-8,
		state:        make(map[*float64]*adamState),
	}
}

// Step updates params in place using the Adam rule. Moment estimates are
// tracked per parameter slice; the timestep advances once per call for
// that slice.
func (a *Adam) Step(params, grads []float64) {
	if len(params) != len(grads) {
		panic("opt: Adam.Step: params and grads must have same length")
	}
	if len(params) == 0 {
		return
	}
	if a.state == nil {
		a.state = make(map[*float64]*adamState)
	}

	key := &params[0]
	st, ok := a.state[key]
	if !ok {
		st = &adamState{
			m: make([]float64, len(params)),
			v: make([]float64, len(params)),
		}
		a.state[key] = st
	}

	st.t++
	c1 := 1 - math.Pow(a.Beta1, float64(st.t))
	c2 := 1 - math.Pow(a.Beta2, float64(st.t))

	for i := range params {
		g := grads[i]
		st.m[i] = a.Beta1*st.m[i] + (1-a.Beta1)*g
		st.v[i] = a.Beta2*st.v[i] + (1-a.Beta2)*g*g

		mHat := st.m[i] / c1
		vHat := st.v[i] / c2
		params[i] -= a.LearningRate * mHat / (math.Sqrt(vHat) + a.Epsilon)
	}
}
