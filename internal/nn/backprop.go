package nn

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/optim"
	"github.com/born-ml/simplenet/internal/tensor"
)

// Optimizers holds one optimizer instance per parameter tensor.
// Adaptive variants carry per-tensor running statistics, so instances
// must not be shared between fields.
type Optimizers struct {
	W2 optim.Optimizer
	B2 optim.Optimizer
	W1 optim.Optimizer
	B1 optim.Optimizer
}

// Backprop computes the gradients of the batch loss with respect to all
// four parameter tensors and hands each (weight, gradient) pair to its
// optimizer.
//
// The chain rule is applied by hand:
//
//  1. dOut = (preds - labels) / C
//     combined softmax + cross-entropy gradient at the output
//     pre-activation, carrying the same /C normalization as LogLoss
//  2. gradW2 = (dOutᵀ · hidden)ᵀ
//  3. deltaH = hidden ⊙ (1 - hidden) ⊙ (dOut · W2ᵀ)
//     sigmoid derivative σ'(x) = σ(x)(1-σ(x))
//  4. gradW1 = inputᵀ · deltaH
//  5. bias gradients are the column sums of dOut and deltaH
//
// All four gradients come from the same forward pass; the four updates
// are independent of each other. Inputs, including the cached hidden
// activations, are never mutated. Shape mismatches panic.
//
// Returns the four updated parameter tensors (w2, b2, w1, b1).
func Backprop(labels, preds, hidden, w2, w1, b2, b1, input *tensor.Dense, opts Optimizers) (w2New, b2New, w1New, b1New *tensor.Dense) {
	if !labels.Shape().Equal(preds.Shape()) {
		panic(fmt.Sprintf("backprop: labels shape %s does not match predictions shape %s",
			labels.Shape(), preds.Shape()))
	}
	if hidden.Rows() != preds.Rows() {
		panic(fmt.Sprintf("backprop: hidden batch size %d does not match predictions batch size %d",
			hidden.Rows(), preds.Rows()))
	}
	if input.Rows() != preds.Rows() {
		panic(fmt.Sprintf("backprop: input batch size %d does not match predictions batch size %d",
			input.Rows(), preds.Rows()))
	}

	numClasses := float64(labels.Cols())
	dOut := preds.Sub(labels).Scale(1.0 / numClasses)

	gradW2 := dOut.T().MatMul(hidden).T()
	deltaH := hidden.MulElem(tensor.Full(hidden.Rows(), hidden.Cols(), 1.0).Sub(hidden)).
		MulElem(dOut.MatMul(w2.T()))
	gradW1 := input.T().MatMul(deltaH)

	gradB2 := dOut.ColSums()
	gradB1 := deltaH.ColSums()

	w2New = opts.W2.Update(w2, gradW2)
	b2New = opts.B2.Update(b2, gradB2)
	w1New = opts.W1.Update(w1, gradW1)
	b1New = opts.B1.Update(b1, gradB1)

	return w2New, b2New, w1New, b1New
}
