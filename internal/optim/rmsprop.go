package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/simplenet/internal/tensor"
)

// RMSProp implements adaptive gradient descent with a running mean of
// squared gradients.
//
// Update rule:
//
//	r        = gamma * gradient² + (1-gamma) * r
//	velocity = (alpha / (sqrt(r) + eps)) ⊙ gradient
//	weight   = weight - velocity
//
// Note that gamma scales the fresh squared gradient, not the running
// average. This is deliberately kept as-is rather than flipped to the
// textbook formulation: the defaults are tuned against it.
//
// The running statistics r and velocity are allocated at construction
// with the shape of the tracked tensor, persist for the optimizer's
// lifetime, and are never reset. One RMSProp instance must serve exactly
// one parameter tensor.
type RMSProp struct {
	gamma    float64
	alpha    float64
	eps      float64
	r        *tensor.Dense
	velocity *tensor.Dense
}

// RMSPropConfig holds configuration for RMSProp.
type RMSPropConfig struct {
	Gamma float64 // Decay for the squared-gradient running average (default: 0.9)
	Alpha float64 // Base step size (default: 0.001)
	Eps   float64 // Stability constant added to sqrt(r) (default: 1e-8)
}

// NewRMSProp creates an RMSProp optimizer tracking a rows×cols tensor.
// Zero config fields are replaced by defaults.
func NewRMSProp(rows, cols int, config RMSPropConfig) *RMSProp {
	if config.Gamma == 0 {
		config.Gamma = 0.9
	}
	if config.Alpha == 0 {
		config.Alpha = 0.001
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &RMSProp{
		gamma:    config.Gamma,
		alpha:    config.Alpha,
		eps:      config.Eps,
		r:        tensor.Zeros(rows, cols),
		velocity: tensor.Zeros(rows, cols),
	}
}

// Update applies one adaptive step and advances the running statistics.
// Panics if the weight or gradient shape does not match the tracked
// shape; a mismatch means the instance is being shared across tensors.
func (p *RMSProp) Update(weight, grad *tensor.Dense) *tensor.Dense {
	if !weight.Shape().Equal(p.r.Shape()) {
		panic(fmt.Sprintf("rmsprop: weight shape %s does not match tracked shape %s",
			weight.Shape(), p.r.Shape()))
	}
	if !grad.Shape().Equal(p.r.Shape()) {
		panic(fmt.Sprintf("rmsprop: gradient shape %s does not match tracked shape %s",
			grad.Shape(), p.r.Shape()))
	}

	rData := p.r.Data()
	vData := p.velocity.Data()
	gData := grad.Data()
	out := weight.Clone()
	wData := out.Data()

	for i := range wData {
		g := gData[i]
		rData[i] = p.gamma*g*g + (1.0-p.gamma)*rData[i]
		vData[i] = (p.alpha / (math.Sqrt(rData[i]) + p.eps)) * g
		wData[i] -= vData[i]
	}

	return out
}

// State returns the current running statistics (r, velocity).
// Exposed for inspection; mutating the returned tensors corrupts the
// optimizer.
func (p *RMSProp) State() (r, velocity *tensor.Dense) {
	return p.r, p.velocity
}
