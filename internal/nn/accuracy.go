package nn

import (
	"fmt"

	"github.com/born-ml/simplenet/internal/tensor"
)

// Accuracy returns the fraction of rows whose predicted class (argmax of
// the prediction row) matches the labeled class (argmax of the one-hot
// label row).
func Accuracy(labels, preds *tensor.Dense) float64 {
	if !labels.Shape().Equal(preds.Shape()) {
		panic(fmt.Sprintf("accuracy: labels shape %s does not match predictions shape %s",
			labels.Shape(), preds.Shape()))
	}

	correct := 0
	for i := 0; i < labels.Rows(); i++ {
		if preds.ArgMaxRow(i) == labels.ArgMaxRow(i) {
			correct++
		}
	}
	return float64(correct) / float64(labels.Rows())
}
