package optim

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/tensor"
)

// GradientDescent implements plain (non-adaptive) gradient descent.
//
// Update rule:
//
//	weight = weight - lr * gradient
//
// Example:
//
//	opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
//	w = opt.Update(w, grad)
type GradientDescent struct {
	lr float64
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR float64 // Learning rate (default: 0.001)
}

// NewGradientDescent creates a new gradient-descent optimizer.
// A zero LR is replaced by the default of 0.001.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.001
	}
	return &GradientDescent{lr: config.LR}
}

// Update applies one descent step: weight - lr * gradient.
// Panics if weight and gradient shapes differ.
func (g *GradientDescent) Update(weight, grad *tensor.Dense) *tensor.Dense {
	if !weight.Shape().Equal(grad.Shape()) {
		panic(fmt.Sprintf("gradientdescent: weight shape %s does not match gradient shape %s",
			weight.Shape(), grad.Shape()))
	}
	return weight.Sub(grad.Scale(g.lr))
}

// LR returns the configured learning rate.
func (g *GradientDescent) LR() float64 {
	return g.lr
}
