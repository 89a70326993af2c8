// Package optim implements weight-update strategies for training.
//
// This package provides:
//   - Optimizer interface: a single Update capability
//   - GradientDescent: plain gradient descent
//   - RMSProp: adaptive per-element step scaling
//
// Adaptive optimizers keep running statistics with the same shape as the
// tensor they track, so one instance must be dedicated to one logical
// parameter tensor for its whole lifetime. Sharing an instance across
// unrelated tensors corrupts the statistics of both.
//
// Example usage:
//
//	opt := optim.NewRMSProp(784, 128, optim.RMSPropConfig{Alpha: 0.001})
//
//	for step := range steps {
//	    grad := computeGradient(w)
//	    w = opt.Update(w, grad)
//	}
package optim

import "github.com/born-ml/simplenet/internal/tensor"

// Optimizer maps (current weights, gradient) to new weights.
//
// Update never mutates its arguments; it returns a freshly allocated
// tensor, and callers rebind the parameter. Stateful variants update
// their internal running statistics on every call.
type Optimizer interface {
	Update(weight, grad *tensor.Dense) *tensor.Dense
}
