// Package nn implements the numerical core of a two-layer feed-forward
// classifier: forward propagation, cross-entropy loss, and manual
// backpropagation through both weight matrices and biases.
//
// The network is
//
//	hidden = sigmoid(input · W1 + b1)
//	preds  = softmax(hidden · W2 + b2)
//
// with shapes input (N×D), W1 (D×H), b1 (1×H), W2 (H×C), b2 (1×C) for a
// batch of N examples, H hidden units and C classes. Bias rows are
// broadcast-added across the batch dimension.
//
// All functions are pure: inputs are never mutated, and a dimension
// mismatch between any two operands panics immediately rather than being
// reshaped or broadcast away.
package nn

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/tensor"
)

// Forward computes one forward pass.
//
// Parameters:
//   - input: batch of examples, shape (N×D)
//   - w1, b1: input→hidden weights (D×H) and bias (1×H)
//   - w2, b2: hidden→output weights (H×C) and bias (1×C)
//
// Returns the softmax class distribution (N×C, rows sum to 1) and the
// hidden sigmoid activations (N×H). The activations are consumed by
// Backprop within the same training step.
func Forward(input, w1, b1, w2, b2 *tensor.Dense) (preds, hidden *tensor.Dense) {
	if input.Cols() != w1.Rows() {
		panic(fmt.Sprintf("forward: input shape %s incompatible with w1 shape %s",
			input.Shape(), w1.Shape()))
	}
	if w1.Cols() != w2.Rows() {
		panic(fmt.Sprintf("forward: w1 shape %s incompatible with w2 shape %s",
			w1.Shape(), w2.Shape()))
	}

	hidden = input.MatMul(w1).AddRowVector(b1).Sigmoid()
	preds = hidden.MatMul(w2).AddRowVector(b2).Softmax()
	return preds, hidden
}
