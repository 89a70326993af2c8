package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/simplenet/internal/tensor"
)

// LogLoss computes the mean categorical cross-entropy of a batch.
//
// Per row: -Σ_i labels_i · ln(preds_i) / numClasses, then the mean over
// all rows. The division by the class count inside the row sum is part of
// the update rule's arithmetic — Backprop folds the same factor into its
// output gradient, and the two must stay consistent.
//
// A prediction of exactly zero under a hot label yields -Inf (or NaN);
// numerical degeneracy is surfaced, not masked.
func LogLoss(labels, preds *tensor.Dense) float64 {
	if !labels.Shape().Equal(preds.Shape()) {
		panic(fmt.Sprintf("logloss: labels shape %s does not match predictions shape %s",
			labels.Shape(), preds.Shape()))
	}

	numClasses := float64(preds.Cols())
	var total float64
	for i := 0; i < labels.Rows(); i++ {
		var rowLoss float64
		for j := 0; j < labels.Cols(); j++ {
			if l := labels.At(i, j); l != 0 {
				rowLoss -= l * math.Log(preds.At(i, j)) / numClasses
			}
		}
		total += rowLoss
	}
	return total / float64(labels.Rows())
}
